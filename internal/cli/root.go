// Package cli implements the northwind command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JonMunkholm/northwind/internal/config"
	"github.com/JonMunkholm/northwind/internal/core"
	"github.com/JonMunkholm/northwind/internal/logging"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "northwind",
	Short: "Read and write the Northwind Customers, Products and Shippers tables",
	Long: `northwind runs the CRUD accessors against a PostgreSQL database.

Configuration comes from the environment (DATABASE_URL is required) and an
optional .env file.

Examples:

  northwind seed
  northwind demo
  northwind customers get ALFKI
  northwind shippers add --data '{"companyName":"Acme","phone":"555-0100"}'
  northwind products update 1 --file chai.json
  northwind serve
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError shows the mapped message for a UserError and logs the
// technical error it wraps; other errors are printed as they are.
func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)

	var ue *core.UserError
	if !errors.As(err, &ue) {
		red.Fprintln(w, "error:", err)
		return
	}
	slog.Debug("command failed", "error", ue.Technical, "code", ue.User.Code)
	red.Fprintln(w, "error:", core.FormatUserError(ue.Technical))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(shippersCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sqlCmd)
}

// loadConfig reads the dotenv file if present, then the environment, and
// installs the configured logger.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(envFile); err == nil {
		slog.Debug("loaded env file", "path", envFile)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}
