package cli

import (
	"context"

	"github.com/JonMunkholm/northwind/internal/seed"
	"github.com/spf13/cobra"
)

var seedReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the tables and load the sample rows",
	Long: `Create the Customers, Products and Shippers tables if they are missing
and load the sample rows into every empty table.

With --reset the tables are truncated first. This deletes all data.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			fx, err := seed.LoadFixtures()
			if err != nil {
				return err
			}
			if seedReset {
				if err := seed.CreateSchema(ctx, a.provider); err != nil {
					return err
				}
				if err := seed.Reset(ctx, a.provider); err != nil {
					return err
				}
				yellow.Fprintln(cmd.OutOrStdout(), "tables truncated")
			}

			res, err := seed.Apply(ctx, a.provider, fx)
			if err != nil {
				return err
			}
			green.Fprintf(cmd.OutOrStdout(), "seeded customers=%d shippers=%d products=%d\n",
				res.Customers, res.Shippers, res.Products)
			return nil
		})
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "truncate the tables before loading")
}
