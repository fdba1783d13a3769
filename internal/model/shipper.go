package model

import "fmt"

// Shipper is a row of the Shippers table. ShipperID is zero until the
// store assigns one on insert.
type Shipper struct {
	ShipperID   int32  `json:"shipperId" yaml:"shipperId"`
	CompanyName string `json:"companyName" yaml:"companyName"`
	Phone       string `json:"phone" yaml:"phone"`
}

func (s Shipper) String() string {
	return fmt.Sprintf("Shipper{id=%d, company=%q, phone=%s}", s.ShipperID, s.CompanyName, s.Phone)
}
