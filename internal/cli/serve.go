package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/northwind/internal/config"
	"github.com/JonMunkholm/northwind/internal/core"
	"github.com/JonMunkholm/northwind/internal/store"
	"github.com/JonMunkholm/northwind/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return Serve(cmd.Context(), cfg)
	},
}

// Serve opens the pool, serves the API and shuts down gracefully on
// SIGINT or SIGTERM.
func Serve(ctx context.Context, cfg *config.Config) error {
	slog.Info("configuration loaded",
		"config", cfg.String(),
	)

	pool, err := store.OpenPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	slog.Info("connected to database", "url", config.MaskURL(cfg.Database.URL))

	svc := core.NewService(store.NewPoolProvider(pool), core.Options{
		StatementTimeout: cfg.Database.StatementTimeout,
	})
	server := web.NewServer(svc, cfg)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		return err
	}
	slog.Info("server stopped")
	return nil
}
