// Package store implements the parameterized-statement and row-mapping
// contract shared by every Northwind accessor.
//
// An accessor is configured with a [Table] describing one relational table
// (name, key column, non-key columns in declared order). Each operation
// borrows exactly one connection from a [Provider], runs a single statement
// and returns the connection before it returns, on every path.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of a connection the accessors use.
// Satisfied by *pgxpool.Conn, *pgxpool.Pool, pgx.Tx and pgxmock.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Conn is a borrowed connection. Release must be called exactly once.
type Conn interface {
	DBTX
	Release()
}

// Provider hands out connections. Implementations must be safe for
// concurrent checkout of independent connections.
type Provider interface {
	Acquire(ctx context.Context) (Conn, error)
}

// PoolProvider is a Provider backed by a pgx connection pool.
type PoolProvider struct {
	pool *pgxpool.Pool
}

// NewPoolProvider wraps an existing pool. The caller keeps ownership of the
// pool and is responsible for closing it.
func NewPoolProvider(pool *pgxpool.Pool) *PoolProvider {
	return &PoolProvider{pool: pool}
}

// Acquire borrows a connection from the pool. Failures (pool exhausted
// until ctx expires, store unreachable) are reported as *ConnectionError.
func (p *PoolProvider) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return conn, nil
}

// Ping verifies the store is reachable.
func (p *PoolProvider) Ping(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return &ConnectionError{Err: err}
	}
	return nil
}

// PoolStats is a point-in-time snapshot of pool usage.
type PoolStats struct {
	Total    int32 `json:"total"`
	Idle     int32 `json:"idle"`
	Acquired int32 `json:"acquired"`
	Max      int32 `json:"max"`
}

// Stats reports current pool usage.
func (p *PoolProvider) Stats() PoolStats {
	s := p.pool.Stat()
	return PoolStats{
		Total:    s.TotalConns(),
		Idle:     s.IdleConns(),
		Acquired: s.AcquiredConns(),
		Max:      s.MaxConns(),
	}
}
