// Package seed creates the Northwind tables and loads the sample rows.
//
// Rows are written through the dao accessors, so seeding goes through the
// same statements as every other caller. A table that already holds rows is
// left alone, which makes Apply safe to run repeatedly.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/northwind/internal/dao"
	"github.com/JonMunkholm/northwind/internal/logging"
	"github.com/JonMunkholm/northwind/internal/store"
)

// Timeout bounds Apply and Reset when the caller's context has no deadline.
const Timeout = 30 * time.Second

// Result counts the rows Apply inserted per table.
type Result struct {
	Customers int `json:"customers"`
	Shippers  int `json:"shippers"`
	Products  int `json:"products"`
}

// Apply creates missing tables and loads fx into every empty table.
func Apply(ctx context.Context, p store.Provider, fx Fixtures) (Result, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var res Result
	if err := CreateSchema(ctx, p); err != nil {
		return res, err
	}

	var err error
	if res.Customers, err = load(ctx, dao.NewCustomers(p), fx.Customers); err != nil {
		return res, err
	}
	if res.Shippers, err = load(ctx, dao.NewShippers(p), fx.Shippers); err != nil {
		return res, err
	}
	if res.Products, err = load(ctx, dao.NewProducts(p), fx.Products); err != nil {
		return res, err
	}
	return res, nil
}

// CreateSchema runs every Schema statement on one connection.
func CreateSchema(ctx context.Context, p store.Provider) error {
	return run(ctx, p, Schema)
}

// Reset empties the three tables and restarts their generated keys.
// This is destructive.
func Reset(ctx context.Context, p store.Provider) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return run(ctx, p, []string{
		"TRUNCATE TABLE Products, Shippers, Customers RESTART IDENTITY",
	})
}

func run(ctx context.Context, p store.Provider, stmts []string) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, stmt := range stmts {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}

// load inserts records unless the table already has rows.
func load[T any, K comparable](ctx context.Context, a *store.Accessor[T, K], records []T) (int, error) {
	logger := logging.WithFields(ctx, "table", a.TableName())

	existing, err := a.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		logger.Info("table not empty, skipping", "rows", len(existing))
		return 0, nil
	}

	for i, r := range records {
		if _, err := a.Add(ctx, r); err != nil {
			return i, fmt.Errorf("seed %s row %d: %w", a.TableName(), i+1, err)
		}
	}
	logger.Info("table seeded", "rows", len(records))
	return len(records), nil
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, Timeout)
}
