package model

import "fmt"

// Product is a row of the Products table. SupplierID and CategoryID are
// opaque foreign keys; they are never resolved in-process.
type Product struct {
	ProductID       int32   `json:"productId" yaml:"productId"`
	ProductName     string  `json:"productName" yaml:"productName"`
	SupplierID      int32   `json:"supplierId" yaml:"supplierId"`
	CategoryID      int32   `json:"categoryId" yaml:"categoryId"`
	QuantityPerUnit string  `json:"quantityPerUnit" yaml:"quantityPerUnit"`
	UnitPrice       float64 `json:"unitPrice" yaml:"unitPrice"`
	UnitsInStock    int32   `json:"unitsInStock" yaml:"unitsInStock"`
	UnitsOnOrder    int32   `json:"unitsOnOrder" yaml:"unitsOnOrder"`
	ReorderLevel    int32   `json:"reorderLevel" yaml:"reorderLevel"`
	Discontinued    int32   `json:"discontinued" yaml:"discontinued"`
}

func (p Product) String() string {
	return fmt.Sprintf("Product{id=%d, name=%q, supplier=%d, category=%d, qty=%q, price=%.2f, stock=%d, onOrder=%d, reorder=%d, discontinued=%d}",
		p.ProductID, p.ProductName, p.SupplierID, p.CategoryID, p.QuantityPerUnit,
		p.UnitPrice, p.UnitsInStock, p.UnitsOnOrder, p.ReorderLevel, p.Discontinued)
}
