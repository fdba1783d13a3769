// Package storetest provides a pgxmock-backed store.Provider for tests.
package storetest

import (
	"context"
	"sync"
	"testing"

	"github.com/JonMunkholm/northwind/internal/store"
	"github.com/pashagolub/pgxmock/v4"
)

// Provider hands out connections backed by a single pgxmock pool and counts
// checkouts so tests can assert every connection was returned.
type Provider struct {
	Mock pgxmock.PgxPoolIface

	mu         sync.Mutex
	acquired   int
	released   int
	acquireErr error
}

// New creates a Provider whose mock matches statements by exact text.
// At cleanup it fails the test if expectations were not met or a
// connection was not released.
func New(t testing.TB) *Provider {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("pgxmock.NewPool() error = %v", err)
	}

	p := &Provider{Mock: mock}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet statement expectations: %v", err)
		}
		if p.Outstanding() != 0 {
			t.Errorf("connections not released: acquired=%d released=%d", p.Acquired(), p.Released())
		}
		mock.Close()
	})
	return p
}

// FailAcquire makes subsequent Acquire calls return err.
func (p *Provider) FailAcquire(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.acquireErr = err
}

// Acquire implements store.Provider.
func (p *Provider) Acquire(ctx context.Context) (store.Conn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.acquireErr != nil {
		return nil, &store.ConnectionError{Err: p.acquireErr}
	}
	if err := ctx.Err(); err != nil {
		return nil, &store.ConnectionError{Err: err}
	}
	p.acquired++
	return &conn{DBTX: p.Mock, p: p}, nil
}

// Acquired returns how many connections were handed out.
func (p *Provider) Acquired() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.acquired
}

// Released returns how many connections were returned.
func (p *Provider) Released() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}

// Outstanding returns connections acquired but not yet released.
func (p *Provider) Outstanding() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.acquired - p.released
}

type conn struct {
	store.DBTX
	p    *Provider
	once sync.Once
}

func (c *conn) Release() {
	c.once.Do(func() {
		c.p.mu.Lock()
		c.p.released++
		c.p.mu.Unlock()
	})
}
