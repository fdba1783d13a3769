package dao

import (
	"github.com/JonMunkholm/northwind/internal/model"
	"github.com/JonMunkholm/northwind/internal/store"
)

// Products is the accessor for the Products table. ProductID is assigned by
// the store on insert.
type Products = store.Accessor[model.Product, int32]

// ProductTable describes the Products table.
var ProductTable = store.Table[model.Product, int32]{
	Name:      "Products",
	KeyColumn: "ProductID",
	Key:       func(p *model.Product) *int32 { return &p.ProductID },
	Generated: true,
	Columns: []store.Column[model.Product]{
		store.Field("ProductName", func(p *model.Product) *string { return &p.ProductName }),
		store.Field("SupplierID", func(p *model.Product) *int32 { return &p.SupplierID }),
		store.Field("CategoryID", func(p *model.Product) *int32 { return &p.CategoryID }),
		store.Field("QuantityPerUnit", func(p *model.Product) *string { return &p.QuantityPerUnit }),
		store.Field("UnitPrice", func(p *model.Product) *float64 { return &p.UnitPrice }),
		store.Field("UnitsInStock", func(p *model.Product) *int32 { return &p.UnitsInStock }),
		store.Field("UnitsOnOrder", func(p *model.Product) *int32 { return &p.UnitsOnOrder }),
		store.Field("ReorderLevel", func(p *model.Product) *int32 { return &p.ReorderLevel }),
		store.Field("Discontinued", func(p *model.Product) *int32 { return &p.Discontinued }),
	},
}

// NewProducts returns a Products accessor drawing connections from p.
func NewProducts(p store.Provider) *Products {
	return store.NewAccessor(p, ProductTable)
}
