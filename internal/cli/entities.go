package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/JonMunkholm/northwind/internal/core"
	"github.com/JonMunkholm/northwind/internal/model"
	"github.com/spf13/cobra"
)

// entity binds the list, get, add, update and delete subcommands of one
// table to the matching Service methods.
type entity[T fmt.Stringer, K comparable] struct {
	name   string
	parse  func(string) (K, error)
	setKey func(*T, K)

	list   func(*core.Service, context.Context) ([]T, error)
	get    func(*core.Service, context.Context, K) (T, error)
	add    func(*core.Service, context.Context, T) (T, error)
	update func(*core.Service, context.Context, T) (int64, error)
	remove func(*core.Service, context.Context, K) (int64, error)
}

func (e entity[T, K]) command(use, short string) *cobra.Command {
	cmd := &cobra.Command{Use: use, Short: short}
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of text")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every " + e.name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
				records, err := e.list(a.svc, ctx)
				if err != nil {
					return userError(err)
				}
				return printRecords(cmd.OutOrStdout(), records)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Print one " + e.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := e.parse(args[0])
			if err != nil {
				return userError(err)
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
				record, err := e.get(a.svc, ctx, key)
				if err != nil {
					return userError(err)
				}
				return printRecord(cmd.OutOrStdout(), record)
			})
		},
	})

	cmd.AddCommand(e.addCommand(), e.updateCommand())

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one " + e.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := e.parse(args[0])
			if err != nil {
				return userError(err)
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
				n, err := e.remove(a.svc, ctx, key)
				if err != nil {
					return userError(err)
				}
				printAffected(cmd.OutOrStdout(), fmt.Sprintf("delete %s %v", e.name, key), n)
				return nil
			})
		},
	})

	return cmd
}

func (e entity[T, K]) addCommand() *cobra.Command {
	var in recordInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Insert a " + e.name + " read as JSON and print the stored row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := readRecord[T](in, cmd.InOrStdin())
			if err != nil {
				return userError(err)
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
				stored, err := e.add(a.svc, ctx, record)
				if err != nil {
					return userError(err)
				}
				green.Fprintf(cmd.OutOrStdout(), "added %s\n", e.name)
				return printRecord(cmd.OutOrStdout(), stored)
			})
		},
	}
	in.bind(cmd)
	return cmd
}

// updateCommand takes the key from the argument; a key in the JSON is
// ignored.
func (e entity[T, K]) updateCommand() *cobra.Command {
	var in recordInput
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rewrite every field of one " + e.name + " from JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := e.parse(args[0])
			if err != nil {
				return userError(err)
			}
			record, err := readRecord[T](in, cmd.InOrStdin())
			if err != nil {
				return userError(err)
			}
			e.setKey(&record, key)

			return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
				n, err := e.update(a.svc, ctx, record)
				if err != nil {
					return userError(err)
				}
				printAffected(cmd.OutOrStdout(), fmt.Sprintf("update %s %v", e.name, key), n)
				return nil
			})
		},
	}
	in.bind(cmd)
	return cmd
}

// userError pairs err with its mapped message; Execute prints the message
// and logs the technical error.
func userError(err error) error {
	if err == nil {
		return nil
	}
	return core.NewUserError(err)
}

func parseCustomerID(s string) (string, error) {
	if s == "" {
		return "", core.ErrInvalidID
	}
	return s, nil
}

func parseIntID(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, core.ErrInvalidID)
	}
	return int32(n), nil
}

var customersCmd = entity[model.Customer, string]{
	name:   "customer",
	parse:  parseCustomerID,
	setKey: func(c *model.Customer, id string) { c.CustomerID = id },
	list:   (*core.Service).ListCustomers,
	get:    (*core.Service).GetCustomer,
	add:    (*core.Service).AddCustomer,
	update: (*core.Service).UpdateCustomer,
	remove: (*core.Service).DeleteCustomer,
}.command("customers", "Work with the Customers table")

var productsCmd = entity[model.Product, int32]{
	name:   "product",
	parse:  parseIntID,
	setKey: func(p *model.Product, id int32) { p.ProductID = id },
	list:   (*core.Service).ListProducts,
	get:    (*core.Service).GetProduct,
	add:    (*core.Service).AddProduct,
	update: (*core.Service).UpdateProduct,
	remove: (*core.Service).DeleteProduct,
}.command("products", "Work with the Products table")

var shippersCmd = entity[model.Shipper, int32]{
	name:   "shipper",
	parse:  parseIntID,
	setKey: func(sh *model.Shipper, id int32) { sh.ShipperID = id },
	list:   (*core.Service).ListShippers,
	get:    (*core.Service).GetShipper,
	add:    (*core.Service).AddShipper,
	update: (*core.Service).UpdateShipper,
	remove: (*core.Service).DeleteShipper,
}.command("shippers", "Work with the Shippers table")
