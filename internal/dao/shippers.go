package dao

import (
	"github.com/JonMunkholm/northwind/internal/model"
	"github.com/JonMunkholm/northwind/internal/store"
)

// Shippers is the accessor for the Shippers table. A Shipper has no valid
// ShipperID until Add returns.
type Shippers = store.Accessor[model.Shipper, int32]

// ShipperTable describes the Shippers table.
var ShipperTable = store.Table[model.Shipper, int32]{
	Name:      "Shippers",
	KeyColumn: "ShipperID",
	Key:       func(s *model.Shipper) *int32 { return &s.ShipperID },
	Generated: true,
	Columns: []store.Column[model.Shipper]{
		store.Field("CompanyName", func(s *model.Shipper) *string { return &s.CompanyName }),
		store.Field("Phone", func(s *model.Shipper) *string { return &s.Phone }),
	},
}

// NewShippers returns a Shippers accessor drawing connections from p.
func NewShippers(p store.Provider) *Shippers {
	return store.NewAccessor(p, ShipperTable)
}
