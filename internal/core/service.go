package core

import (
	"context"
	"time"

	"github.com/JonMunkholm/northwind/internal/dao"
	"github.com/JonMunkholm/northwind/internal/logging"
	"github.com/JonMunkholm/northwind/internal/model"
	"github.com/JonMunkholm/northwind/internal/store"
)

// Options tunes a Service.
type Options struct {
	// StatementTimeout is applied to calls whose context has no deadline.
	// Zero disables it.
	StatementTimeout time.Duration
}

// pinger and statser are optional provider capabilities; PoolProvider has
// both.
type pinger interface {
	Ping(ctx context.Context) error
}

type statser interface {
	Stats() store.PoolStats
}

// Service exposes the CRUD operations of every Northwind entity.
type Service struct {
	provider  store.Provider
	customers *dao.Customers
	products  *dao.Products
	shippers  *dao.Shippers
	opts      Options
}

// NewService builds the accessors over provider.
func NewService(provider store.Provider, opts Options) *Service {
	return &Service{
		provider:  provider,
		customers: dao.NewCustomers(provider),
		products:  dao.NewProducts(provider),
		shippers:  dao.NewShippers(provider),
		opts:      opts,
	}
}

// Customers returns the underlying Customers accessor.
func (s *Service) Customers() *dao.Customers { return s.customers }

// Products returns the underlying Products accessor.
func (s *Service) Products() *dao.Products { return s.products }

// Shippers returns the underlying Shippers accessor.
func (s *Service) Shippers() *dao.Shippers { return s.shippers }

// Ping checks the store is reachable. Providers that cannot ping report
// healthy once a connection can be acquired.
func (s *Service) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if p, ok := s.provider.(pinger); ok {
		return p.Ping(ctx)
	}
	conn, err := s.provider.Acquire(ctx)
	if err != nil {
		return err
	}
	conn.Release()
	return nil
}

// Stats reports pool usage if the provider tracks it.
func (s *Service) Stats() (store.PoolStats, bool) {
	if p, ok := s.provider.(statser); ok {
		return p.Stats(), true
	}
	return store.PoolStats{}, false
}

// ListCustomers returns every customer.
func (s *Service) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return call(ctx, s, s.customers.TableName(), store.OpGetAll, nil, s.customers.GetAll)
}

// GetCustomer returns the customer with the given id.
func (s *Service) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	return call(ctx, s, s.customers.TableName(), store.OpFind, id, func(ctx context.Context) (model.Customer, error) {
		return s.customers.Find(ctx, id)
	})
}

// AddCustomer inserts c under its caller-supplied id.
func (s *Service) AddCustomer(ctx context.Context, c model.Customer) (model.Customer, error) {
	return call(ctx, s, s.customers.TableName(), store.OpAdd, c.CustomerID, func(ctx context.Context) (model.Customer, error) {
		return s.customers.Add(ctx, c)
	})
}

// UpdateCustomer rewrites every non-key field of c.
func (s *Service) UpdateCustomer(ctx context.Context, c model.Customer) (int64, error) {
	return call(ctx, s, s.customers.TableName(), store.OpUpdate, c.CustomerID, func(ctx context.Context) (int64, error) {
		return s.customers.Update(ctx, c)
	})
}

// DeleteCustomer removes the customer with the given id.
func (s *Service) DeleteCustomer(ctx context.Context, id string) (int64, error) {
	return call(ctx, s, s.customers.TableName(), store.OpDelete, id, func(ctx context.Context) (int64, error) {
		return s.customers.Delete(ctx, id)
	})
}

// ListProducts returns every product.
func (s *Service) ListProducts(ctx context.Context) ([]model.Product, error) {
	return call(ctx, s, s.products.TableName(), store.OpGetAll, nil, s.products.GetAll)
}

// GetProduct returns the product with the given id.
func (s *Service) GetProduct(ctx context.Context, id int32) (model.Product, error) {
	return call(ctx, s, s.products.TableName(), store.OpFind, id, func(ctx context.Context) (model.Product, error) {
		return s.products.Find(ctx, id)
	})
}

// AddProduct inserts p and returns it with the store-assigned ProductID.
func (s *Service) AddProduct(ctx context.Context, p model.Product) (model.Product, error) {
	return call(ctx, s, s.products.TableName(), store.OpAdd, nil, func(ctx context.Context) (model.Product, error) {
		return s.products.Add(ctx, p)
	})
}

// UpdateProduct rewrites every non-key field of p.
func (s *Service) UpdateProduct(ctx context.Context, p model.Product) (int64, error) {
	return call(ctx, s, s.products.TableName(), store.OpUpdate, p.ProductID, func(ctx context.Context) (int64, error) {
		return s.products.Update(ctx, p)
	})
}

// DeleteProduct removes the product with the given id.
func (s *Service) DeleteProduct(ctx context.Context, id int32) (int64, error) {
	return call(ctx, s, s.products.TableName(), store.OpDelete, id, func(ctx context.Context) (int64, error) {
		return s.products.Delete(ctx, id)
	})
}

// ListShippers returns every shipper.
func (s *Service) ListShippers(ctx context.Context) ([]model.Shipper, error) {
	return call(ctx, s, s.shippers.TableName(), store.OpGetAll, nil, s.shippers.GetAll)
}

// GetShipper returns the shipper with the given id.
func (s *Service) GetShipper(ctx context.Context, id int32) (model.Shipper, error) {
	return call(ctx, s, s.shippers.TableName(), store.OpFind, id, func(ctx context.Context) (model.Shipper, error) {
		return s.shippers.Find(ctx, id)
	})
}

// AddShipper inserts sh and returns it with the store-assigned ShipperID.
func (s *Service) AddShipper(ctx context.Context, sh model.Shipper) (model.Shipper, error) {
	return call(ctx, s, s.shippers.TableName(), store.OpAdd, nil, func(ctx context.Context) (model.Shipper, error) {
		return s.shippers.Add(ctx, sh)
	})
}

// UpdateShipper rewrites the company name and phone of sh.
func (s *Service) UpdateShipper(ctx context.Context, sh model.Shipper) (int64, error) {
	return call(ctx, s, s.shippers.TableName(), store.OpUpdate, sh.ShipperID, func(ctx context.Context) (int64, error) {
		return s.shippers.Update(ctx, sh)
	})
}

// DeleteShipper removes the shipper with the given id.
func (s *Service) DeleteShipper(ctx context.Context, id int32) (int64, error) {
	return call(ctx, s, s.shippers.TableName(), store.OpDelete, id, func(ctx context.Context) (int64, error) {
		return s.shippers.Delete(ctx, id)
	})
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.StatementTimeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opts.StatementTimeout)
}

// call runs one accessor operation under the statement timeout and logs
// its outcome. key is nil for operations without one.
func call[R any](ctx context.Context, s *Service, table string, op store.Op, key any, fn func(context.Context) (R, error)) (R, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	result, err := fn(ctx)

	logger := logging.WithFields(ctx, "table", table, "op", string(op))
	if key != nil {
		logger = logger.With("key", key)
	}
	elapsed := time.Since(start).Milliseconds()

	switch {
	case err == nil:
		logger.Debug("statement completed", "duration_ms", elapsed)
	case store.IsNotFound(err):
		logger.Debug("record not found", "duration_ms", elapsed)
	default:
		logger.Error("statement failed",
			"error", err,
			"code", MapError(err).Code,
			"duration_ms", elapsed,
		)
	}
	return result, err
}
