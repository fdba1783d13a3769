package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var healthTimeout time.Duration

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database connectivity",
	Long: `Check that the database is reachable and print pool usage.

Examples:
  northwind health
  northwind health --timeout 10s
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
		defer cancel()

		return withApp(ctx, func(ctx context.Context, a *app) error {
			if err := a.svc.Ping(ctx); err != nil {
				return fmt.Errorf("database health check failed: %w", err)
			}
			w := cmd.OutOrStdout()
			green.Fprintln(w, "database is healthy")
			if stats, ok := a.svc.Stats(); ok {
				cyan.Fprintf(w, "pool: total=%d idle=%d acquired=%d max=%d\n",
					stats.Total, stats.Idle, stats.Acquired, stats.Max)
			}
			return nil
		})
	},
}

func init() {
	healthCmd.Flags().DurationVarP(&healthTimeout, "timeout", "t", 5*time.Second, "timeout for the health check")
}
