// Package model holds the Northwind record types returned by the accessors.
package model

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// Customer is a row of the Customers table. CustomerID is chosen by the
// caller before insertion.
type Customer struct {
	CustomerID   string      `json:"customerId" yaml:"customerId"`
	CompanyName  string      `json:"companyName" yaml:"companyName"`
	ContactName  string      `json:"contactName" yaml:"contactName"`
	ContactTitle string      `json:"contactTitle" yaml:"contactTitle"`
	Address      string      `json:"address" yaml:"address"`
	City         string      `json:"city" yaml:"city"`
	Region       pgtype.Text `json:"region" yaml:"-"` // NULL for most non-US customers
	PostalCode   string      `json:"postalCode" yaml:"postalCode"`
	Country      string      `json:"country" yaml:"country"`
	Phone        string      `json:"phone" yaml:"phone"`
	Fax          pgtype.Text `json:"fax" yaml:"-"`
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer{id=%s, company=%q, contact=%q (%s), address=%q, city=%s, region=%s, postal=%s, country=%s, phone=%s, fax=%s}",
		c.CustomerID, c.CompanyName, c.ContactName, c.ContactTitle, c.Address, c.City,
		textOrNull(c.Region), c.PostalCode, c.Country, c.Phone, textOrNull(c.Fax))
}

// textOrNull renders a nullable column the way psql does.
func textOrNull(t pgtype.Text) string {
	if !t.Valid {
		return "<null>"
	}
	return t.String
}
