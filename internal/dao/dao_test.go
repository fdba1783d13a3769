package dao_test

import (
	"context"
	"testing"

	"github.com/JonMunkholm/northwind/internal/dao"
	"github.com/JonMunkholm/northwind/internal/model"
	"github.com/JonMunkholm/northwind/internal/store"
	"github.com/JonMunkholm/northwind/internal/store/storetest"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customerColumns = []string{
	"CustomerID", "CompanyName", "ContactName", "ContactTitle", "Address",
	"City", "Region", "PostalCode", "Country", "Phone", "Fax",
}

func TestCustomerStatements(t *testing.T) {
	s := dao.NewCustomers(storetest.New(t)).Statements()

	cols := "CustomerID, CompanyName, ContactName, ContactTitle, Address, City, Region, PostalCode, Country, Phone, Fax"
	assert.Equal(t, "SELECT "+cols+" FROM Customers", s.SelectAll)
	assert.Equal(t, "SELECT "+cols+" FROM Customers WHERE CustomerID = $1", s.SelectByKey)
	assert.Equal(t, "INSERT INTO Customers ("+cols+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)", s.Insert)
	assert.Equal(t, "UPDATE Customers SET CompanyName = $1, ContactName = $2, ContactTitle = $3, Address = $4, "+
		"City = $5, Region = $6, PostalCode = $7, Country = $8, Phone = $9, Fax = $10 WHERE CustomerID = $11", s.Update)
	assert.Equal(t, "DELETE FROM Customers WHERE CustomerID = $1", s.Delete)
}

func TestProductStatements(t *testing.T) {
	s := dao.NewProducts(storetest.New(t)).Statements()

	assert.Equal(t, "SELECT ProductID, ProductName, SupplierID, CategoryID, QuantityPerUnit, UnitPrice, "+
		"UnitsInStock, UnitsOnOrder, ReorderLevel, Discontinued FROM Products WHERE ProductID = $1", s.SelectByKey)
	assert.Equal(t, "INSERT INTO Products (ProductName, SupplierID, CategoryID, QuantityPerUnit, UnitPrice, "+
		"UnitsInStock, UnitsOnOrder, ReorderLevel, Discontinued) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING ProductID", s.Insert)
	assert.Equal(t, "UPDATE Products SET ProductName = $1, SupplierID = $2, CategoryID = $3, QuantityPerUnit = $4, "+
		"UnitPrice = $5, UnitsInStock = $6, UnitsOnOrder = $7, ReorderLevel = $8, Discontinued = $9 WHERE ProductID = $10", s.Update)
}

func TestShipperStatements(t *testing.T) {
	s := dao.NewShippers(storetest.New(t)).Statements()

	assert.Equal(t, store.Statements{
		SelectAll:   "SELECT ShipperID, CompanyName, Phone FROM Shippers",
		SelectByKey: "SELECT ShipperID, CompanyName, Phone FROM Shippers WHERE ShipperID = $1",
		Insert:      "INSERT INTO Shippers (CompanyName, Phone) VALUES ($1, $2) RETURNING ShipperID",
		Update:      "UPDATE Shippers SET CompanyName = $1, Phone = $2 WHERE ShipperID = $3",
		Delete:      "DELETE FROM Shippers WHERE ShipperID = $1",
	}, s)
}

func TestCustomers_FindALFKI(t *testing.T) {
	p := storetest.New(t)
	customers := dao.NewCustomers(p)

	p.Mock.ExpectQuery(customers.Statements().SelectByKey).
		WithArgs("ALFKI").
		WillReturnRows(pgxmock.NewRows(customerColumns).AddRow(
			"ALFKI", "Alfreds Futterkiste", "Maria Anders", "Sales Representative",
			"Obere Str. 57", "Berlin", nil, "12209", "Germany", "030-0074321", "030-0076545",
		))

	got, err := customers.Find(context.Background(), "ALFKI")
	require.NoError(t, err)
	assert.Equal(t, "ALFKI", got.CustomerID)
	assert.Equal(t, "Alfreds Futterkiste", got.CompanyName)
	assert.False(t, got.Region.Valid)
	assert.Equal(t, pgtype.Text{String: "030-0076545", Valid: true}, got.Fax)
}

func TestCustomers_FindNOPE99(t *testing.T) {
	p := storetest.New(t)
	customers := dao.NewCustomers(p)

	p.Mock.ExpectQuery(customers.Statements().SelectByKey).
		WithArgs("NOPE99").
		WillReturnRows(pgxmock.NewRows(customerColumns))

	_, err := customers.Find(context.Background(), "NOPE99")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCustomers_AddBindsKeyFirst(t *testing.T) {
	p := storetest.New(t)
	customers := dao.NewCustomers(p)

	in := model.Customer{
		CustomerID: "TSTID", CompanyName: "Test Company", ContactName: "John Doe",
		ContactTitle: "Manager", Address: "123 Test St", City: "Test City",
		Region: pgtype.Text{String: "TC", Valid: true}, PostalCode: "12345",
		Country: "USA", Phone: "555-1234",
	}
	p.Mock.ExpectExec(customers.Statements().Insert).
		WithArgs("TSTID", "Test Company", "John Doe", "Manager", "123 Test St", "Test City",
			pgtype.Text{String: "TC", Valid: true}, "12345", "USA", "555-1234", pgtype.Text{}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	got, err := customers.Add(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestShippers_AddAcme(t *testing.T) {
	p := storetest.New(t)
	shippers := dao.NewShippers(p)
	stmts := shippers.Statements()

	p.Mock.ExpectQuery(stmts.Insert).
		WithArgs("Acme", "555-0100").
		WillReturnRows(pgxmock.NewRows([]string{"shipperid"}).AddRow(int32(4)))
	p.Mock.ExpectQuery(stmts.SelectByKey).
		WithArgs(int32(4)).
		WillReturnRows(pgxmock.NewRows([]string{"shipperid", "companyname", "phone"}).
			AddRow(int32(4), "Acme", "555-0100"))

	ctx := context.Background()
	added, err := shippers.Add(ctx, model.Shipper{CompanyName: "Acme", Phone: "555-0100"})
	require.NoError(t, err)
	require.NotZero(t, added.ShipperID)

	found, err := shippers.Find(ctx, added.ShipperID)
	require.NoError(t, err)
	assert.Equal(t, added, found)
}

func TestProducts_UpdateBindsKeyLast(t *testing.T) {
	p := storetest.New(t)
	products := dao.NewProducts(p)

	chai := model.Product{
		ProductID: 1, ProductName: "Chai", SupplierID: 1, CategoryID: 1,
		QuantityPerUnit: "10 boxes x 20 bags", UnitPrice: 18, UnitsInStock: 39,
		UnitsOnOrder: 0, ReorderLevel: 10, Discontinued: 0,
	}
	p.Mock.ExpectExec(products.Statements().Update).
		WithArgs("Chai", int32(1), int32(1), "10 boxes x 20 bags", float64(18),
			int32(39), int32(0), int32(10), int32(0), int32(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	n, err := products.Update(context.Background(), chai)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestProducts_GetAllTypes(t *testing.T) {
	p := storetest.New(t)
	products := dao.NewProducts(p)

	p.Mock.ExpectQuery(products.Statements().SelectAll).
		WillReturnRows(pgxmock.NewRows([]string{
			"productid", "productname", "supplierid", "categoryid", "quantityperunit",
			"unitprice", "unitsinstock", "unitsonorder", "reorderlevel", "discontinued",
		}).AddRow(int32(2), "Chang", int32(1), int32(1), "24 - 12 oz bottles",
			float64(19), int32(17), int32(40), int32(25), int32(0)))

	got, err := products.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.Product{
		ProductID: 2, ProductName: "Chang", SupplierID: 1, CategoryID: 1,
		QuantityPerUnit: "24 - 12 oz bottles", UnitPrice: 19, UnitsInStock: 17,
		UnitsOnOrder: 40, ReorderLevel: 25,
	}, got[0])
}

func TestCustomers_AddFindKeepsNulls(t *testing.T) {
	p := storetest.New(t)
	customers := dao.NewCustomers(p)
	stmts := customers.Statements()

	anton := model.Customer{
		CustomerID: "ANTON", CompanyName: "Antonio Moreno Taquería", ContactName: "Antonio Moreno",
		ContactTitle: "Owner", Address: "Mataderos  2312", City: "México D.F.",
		PostalCode: "05023", Country: "Mexico", Phone: "(5) 555-3932",
	}
	p.Mock.ExpectExec(stmts.Insert).
		WithArgs("ANTON", "Antonio Moreno Taquería", "Antonio Moreno", "Owner", "Mataderos  2312",
			"México D.F.", pgtype.Text{}, "05023", "Mexico", "(5) 555-3932", pgtype.Text{}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	p.Mock.ExpectQuery(stmts.SelectByKey).
		WithArgs("ANTON").
		WillReturnRows(pgxmock.NewRows(customerColumns).AddRow(
			"ANTON", "Antonio Moreno Taquería", "Antonio Moreno", "Owner", "Mataderos  2312",
			"México D.F.", nil, "05023", "Mexico", "(5) 555-3932", nil,
		))

	ctx := context.Background()
	added, err := customers.Add(ctx, anton)
	require.NoError(t, err)

	found, err := customers.Find(ctx, added.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, anton, found)
	assert.False(t, found.Region.Valid)
	assert.False(t, found.Fax.Valid)
}
