package cli

import (
	"context"

	"github.com/JonMunkholm/northwind/internal/config"
	"github.com/JonMunkholm/northwind/internal/core"
	"github.com/JonMunkholm/northwind/internal/logging"
	"github.com/JonMunkholm/northwind/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

// app is the wiring shared by every command that talks to the database.
type app struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	provider *store.PoolProvider
	svc      *core.Service
}

// connect loads configuration and opens the pool. The returned context
// carries an operation id for log correlation.
func connect(ctx context.Context) (context.Context, *app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return ctx, nil, err
	}

	ctx = logging.WithOperation(ctx)
	pool, err := store.OpenPool(ctx, cfg.Database)
	if err != nil {
		return ctx, nil, err
	}
	logging.FromContext(ctx).Debug("connected", "database", config.MaskURL(cfg.Database.URL))

	provider := store.NewPoolProvider(pool)
	return ctx, &app{
		cfg:      cfg,
		pool:     pool,
		provider: provider,
		svc:      core.NewService(provider, core.Options{StatementTimeout: cfg.Database.StatementTimeout}),
	}, nil
}

func (a *app) close() {
	a.pool.Close()
}

// withApp adapts a command body that needs a connected app.
func withApp(ctx context.Context, fn func(context.Context, *app) error) error {
	ctx, a, err := connect(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(ctx, a)
}
