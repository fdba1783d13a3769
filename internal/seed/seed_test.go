package seed

import (
	"context"
	"errors"
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

var (
	customerColumns = []string{
		"customerid", "companyname", "contactname", "contacttitle", "address",
		"city", "region", "postalcode", "country", "phone", "fax",
	}
	shipperColumns = []string{"shipperid", "companyname", "phone"}
	productColumns = []string{
		"productid", "productname", "supplierid", "categoryid", "quantityperunit",
		"unitprice", "unitsinstock", "unitsonorder", "reorderlevel", "discontinued",
	}
)

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func expectSchema(p *storetest.Provider) {
	for _, stmt := range Schema {
		p.Mock.ExpectExec(stmt).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	}
}

func TestLoadFixtures(t *testing.T) {
	fx, err := LoadFixtures()
	require.NoError(t, err)

	require.Len(t, fx.Customers, 6)
	alfki := fx.Customers[0]
	assert.Equal(t, "ALFKI", alfki.CustomerID)
	assert.Equal(t, "Alfreds Futterkiste", alfki.CompanyName)
	assert.Equal(t, "12209", alfki.PostalCode)
	assert.False(t, alfki.Region.Valid)
	assert.Equal(t, pgtype.Text{String: "030-0076545", Valid: true}, alfki.Fax)

	anton := fx.Customers[2]
	assert.Equal(t, "ANTON", anton.CustomerID)
	assert.False(t, anton.Fax.Valid)

	greal := fx.Customers[5]
	assert.Equal(t, pgtype.Text{String: "OR", Valid: true}, greal.Region)

	require.Len(t, fx.Shippers, 3)
	assert.Equal(t, "Speedy Express", fx.Shippers[0].CompanyName)
	assert.Zero(t, fx.Shippers[0].ShipperID)

	require.Len(t, fx.Products, 5)
	gumbo := fx.Products[4]
	assert.Equal(t, "Chef Anton's Gumbo Mix", gumbo.ProductName)
	assert.InDelta(t, 21.35, gumbo.UnitPrice, 1e-9)
	assert.Equal(t, int32(1), gumbo.Discontinued)
}

func TestApply_EmptyTables(t *testing.T) {
	p := storetest.New(t)
	fx, err := LoadFixtures()
	require.NoError(t, err)

	customers := dao.NewCustomers(p).Statements()
	shippers := dao.NewShippers(p).Statements()
	products := dao.NewProducts(p).Statements()

	expectSchema(p)
	p.Mock.ExpectQuery(customers.SelectAll).WillReturnRows(pgxmock.NewRows(customerColumns))
	for _, c := range fx.Customers[:1] {
		p.Mock.ExpectExec(customers.Insert).
			WithArgs(c.CustomerID, c.CompanyName, c.ContactName, c.ContactTitle, c.Address,
				c.City, c.Region, c.PostalCode, c.Country, c.Phone, c.Fax).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	for range fx.Customers[1:] {
		p.Mock.ExpectExec(customers.Insert).WithArgs(anyArgs(11)...).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	p.Mock.ExpectQuery(shippers.SelectAll).WillReturnRows(pgxmock.NewRows(shipperColumns))
	for i, sh := range fx.Shippers {
		p.Mock.ExpectQuery(shippers.Insert).WithArgs(sh.CompanyName, sh.Phone).
			WillReturnRows(pgxmock.NewRows([]string{"shipperid"}).AddRow(int32(i + 1)))
	}
	p.Mock.ExpectQuery(products.SelectAll).WillReturnRows(pgxmock.NewRows(productColumns))
	for i := range fx.Products {
		p.Mock.ExpectQuery(products.Insert).WithArgs(anyArgs(9)...).
			WillReturnRows(pgxmock.NewRows([]string{"productid"}).AddRow(int32(i + 1)))
	}

	res, err := Apply(context.Background(), p, fx)
	require.NoError(t, err)
	assert.Equal(t, Result{Customers: 6, Shippers: 3, Products: 5}, res)
}

func TestApply_SkipsPopulatedTables(t *testing.T) {
	p := storetest.New(t)
	fx, err := LoadFixtures()
	require.NoError(t, err)

	expectSchema(p)
	p.Mock.ExpectQuery(dao.NewCustomers(p).Statements().SelectAll).
		WillReturnRows(pgxmock.NewRows(customerColumns).AddRow(
			"ALFKI", "Alfreds Futterkiste", "", "", "", "", nil, "", "", "", nil))
	p.Mock.ExpectQuery(dao.NewShippers(p).Statements().SelectAll).
		WillReturnRows(pgxmock.NewRows(shipperColumns).AddRow(int32(1), "Speedy Express", ""))
	p.Mock.ExpectQuery(dao.NewProducts(p).Statements().SelectAll).
		WillReturnRows(pgxmock.NewRows(productColumns).AddRow(
			int32(1), "Chai", int32(1), int32(1), "", float64(18), int32(0), int32(0), int32(0), int32(0)))

	res, err := Apply(context.Background(), p, fx)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

func TestApply_StopsOnInsertFailure(t *testing.T) {
	p := storetest.New(t)
	shippers := dao.NewShippers(p).Statements()
	fx := Fixtures{Shippers: []model.Shipper{
		{CompanyName: "Speedy Express", Phone: "(503) 555-9831"},
		{CompanyName: "United Package", Phone: "(503) 555-3199"},
		{CompanyName: "Federal Shipping", Phone: "(503) 555-9931"},
	}}

	expectSchema(p)
	p.Mock.ExpectQuery(dao.NewCustomers(p).Statements().SelectAll).
		WillReturnRows(pgxmock.NewRows(customerColumns))
	p.Mock.ExpectQuery(shippers.SelectAll).WillReturnRows(pgxmock.NewRows(shipperColumns))
	p.Mock.ExpectQuery(shippers.Insert).WithArgs("Speedy Express", "(503) 555-9831").
		WillReturnRows(pgxmock.NewRows([]string{"shipperid"}).AddRow(int32(1)))
	p.Mock.ExpectQuery(shippers.Insert).WithArgs("United Package", "(503) 555-3199").
		WillReturnError(errors.New("value too long"))

	res, err := Apply(context.Background(), p, fx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed Shippers row 2")
	assert.Equal(t, 1, res.Shippers)
}

func TestApply_SchemaFailure(t *testing.T) {
	p := storetest.New(t)
	p.Mock.ExpectExec(Schema[0]).WillReturnError(errors.New("permission denied for schema public"))

	_, err := Apply(context.Background(), p, Fixtures{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestApply_AcquireFailure(t *testing.T) {
	p := storetest.New(t)
	p.FailAcquire(errors.New("connection refused"))

	_, err := Apply(context.Background(), p, Fixtures{})
	assert.True(t, store.IsConnection(err))
}

func TestReset(t *testing.T) {
	p := storetest.New(t)
	p.Mock.ExpectExec("TRUNCATE TABLE Products, Shippers, Customers RESTART IDENTITY").
		WillReturnResult(pgxmock.NewResult("TRUNCATE TABLE", 0))

	require.NoError(t, Reset(context.Background(), p))
	assert.Equal(t, 1, p.Released())
}
