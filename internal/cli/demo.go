package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/JonMunkholm/northwind/internal/core"
	"github.com/JonMunkholm/northwind/internal/store"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Count customers, then look up ALFKI, shipper 1 and product 1",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			return runDemo(ctx, cmd.OutOrStdout(), a.svc)
		})
	},
}

// runDemo prints a short tour of the three tables. Missing rows are
// reported and the tour continues; store failures stop it.
func runDemo(ctx context.Context, w io.Writer, svc *core.Service) error {
	customers, err := svc.ListCustomers(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Total: %d\n", len(customers))
	if len(customers) > 0 {
		fmt.Fprintf(w, "First customer: %s\n", customers[0])
	}

	customer, err := svc.GetCustomer(ctx, "ALFKI")
	switch {
	case store.IsNotFound(err):
		yellow.Fprintln(w, "Customer ALFKI not found.")
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "Found: %s\n", customer)
	}

	cyan.Fprintln(w, "\n--- Find Shipper by ID ---")
	shipper, err := svc.GetShipper(ctx, 1)
	switch {
	case store.IsNotFound(err):
		yellow.Fprintln(w, "Shipper with ID 1 not found.")
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "Found: %s\n", shipper)
	}

	product, err := svc.GetProduct(ctx, 1)
	switch {
	case store.IsNotFound(err):
		yellow.Fprintln(w, "Product with ID 1 not found.")
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "Found: %s\n", product)
	}
	return nil
}
