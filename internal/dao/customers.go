package dao

import (
	"github.com/JonMunkholm/northwind/internal/model"
	"github.com/JonMunkholm/northwind/internal/store"
	"github.com/jackc/pgx/v5/pgtype"
)

// Customers is the accessor for the Customers table. CustomerID is a
// caller-supplied text key.
type Customers = store.Accessor[model.Customer, string]

// CustomerTable describes the Customers table.
var CustomerTable = store.Table[model.Customer, string]{
	Name:      "Customers",
	KeyColumn: "CustomerID",
	Key:       func(c *model.Customer) *string { return &c.CustomerID },
	Columns: []store.Column[model.Customer]{
		store.Field("CompanyName", func(c *model.Customer) *string { return &c.CompanyName }),
		store.Field("ContactName", func(c *model.Customer) *string { return &c.ContactName }),
		store.Field("ContactTitle", func(c *model.Customer) *string { return &c.ContactTitle }),
		store.Field("Address", func(c *model.Customer) *string { return &c.Address }),
		store.Field("City", func(c *model.Customer) *string { return &c.City }),
		store.Field("Region", func(c *model.Customer) *pgtype.Text { return &c.Region }),
		store.Field("PostalCode", func(c *model.Customer) *string { return &c.PostalCode }),
		store.Field("Country", func(c *model.Customer) *string { return &c.Country }),
		store.Field("Phone", func(c *model.Customer) *string { return &c.Phone }),
		store.Field("Fax", func(c *model.Customer) *pgtype.Text { return &c.Fax }),
	},
}

// NewCustomers returns a Customers accessor drawing connections from p.
func NewCustomers(p store.Provider) *Customers {
	return store.NewAccessor(p, CustomerTable)
}
