package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/JonMunkholm/northwind/internal/dao"
	"github.com/JonMunkholm/northwind/internal/store"
	"github.com/spf13/cobra"
)

var sqlCmd = &cobra.Command{
	Use:   "sql",
	Short: "Print the statements each accessor issues",
	Long: `Print the parameterized statements generated for every table.
No database connection is made.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printStatements(cmd.OutOrStdout())
		return nil
	},
}

// offline satisfies store.Provider for accessors that are only inspected.
type offline struct{}

func (offline) Acquire(context.Context) (store.Conn, error) {
	return nil, &store.ConnectionError{Err: errors.New("offline")}
}

func printStatements(w io.Writer) {
	p := offline{}
	tables := []struct {
		name  string
		stmts store.Statements
	}{
		{dao.CustomerTable.Name, dao.NewCustomers(p).Statements()},
		{dao.ProductTable.Name, dao.NewProducts(p).Statements()},
		{dao.ShipperTable.Name, dao.NewShippers(p).Statements()},
	}

	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		green.Fprintln(w, t.name)
		for _, line := range []struct{ op, stmt string }{
			{string(store.OpGetAll), t.stmts.SelectAll},
			{string(store.OpFind), t.stmts.SelectByKey},
			{string(store.OpAdd), t.stmts.Insert},
			{string(store.OpUpdate), t.stmts.Update},
			{string(store.OpDelete), t.stmts.Delete},
		} {
			cyan.Fprintf(w, "  %-8s ", line.op)
			fmt.Fprintln(w, line.stmt)
		}
	}
}
