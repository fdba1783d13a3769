package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JonMunkholm/northwind/internal/core"
	"github.com/JonMunkholm/northwind/internal/model"
	"github.com/JonMunkholm/northwind/internal/store"
	"github.com/JonMunkholm/northwind/internal/store/storetest"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ShipperLifecycle(t *testing.T) {
	p := storetest.New(t)
	svc := core.NewService(p, core.Options{StatementTimeout: time.Second})
	stmts := svc.Shippers().Statements()
	ctx := context.Background()

	p.Mock.ExpectQuery(stmts.Insert).WithArgs("Acme", "555-0100").
		WillReturnRows(pgxmock.NewRows([]string{"ShipperID"}).AddRow(int32(9)))
	p.Mock.ExpectExec(stmts.Update).WithArgs("Acme Freight", "555-0100", int32(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	p.Mock.ExpectExec(stmts.Delete).WithArgs(int32(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	p.Mock.ExpectQuery(stmts.SelectByKey).WithArgs(int32(9)).
		WillReturnRows(pgxmock.NewRows([]string{"ShipperID", "CompanyName", "Phone"}))

	sh, err := svc.AddShipper(ctx, model.Shipper{CompanyName: "Acme", Phone: "555-0100"})
	require.NoError(t, err)
	assert.Equal(t, int32(9), sh.ShipperID)

	sh.CompanyName = "Acme Freight"
	n, err := svc.UpdateShipper(ctx, sh)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = svc.DeleteShipper(ctx, sh.ShipperID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.GetShipper(ctx, sh.ShipperID)
	assert.True(t, store.IsNotFound(err))
}

func TestService_ListCustomersReportsFailure(t *testing.T) {
	p := storetest.New(t)
	svc := core.NewService(p, core.Options{})

	p.Mock.ExpectQuery(svc.Customers().Statements().SelectAll).
		WillReturnError(errors.New("relation does not exist"))

	got, err := svc.ListCustomers(context.Background())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, "ERR000", core.MapError(err).Code)
}

func TestService_ExpiredDeadlineFailsAcquire(t *testing.T) {
	p := storetest.New(t)
	svc := core.NewService(p, core.Options{StatementTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetProduct(ctx, 1)
	require.Error(t, err)
	assert.True(t, store.IsConnection(err))
	assert.Equal(t, "ERR001", core.MapError(err).Code)
}

func TestService_PingWithoutPinger(t *testing.T) {
	p := storetest.New(t)
	svc := core.NewService(p, core.Options{})

	require.NoError(t, svc.Ping(context.Background()))
	assert.Equal(t, 1, p.Released())

	_, ok := svc.Stats()
	assert.False(t, ok)

	p.FailAcquire(errors.New("refused"))
	assert.True(t, store.IsConnection(svc.Ping(context.Background())))
}
