package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow, color.Bold)
	cyan   = color.New(color.FgCyan)
)

var jsonOutput bool

// printRecords writes one record per line, or a JSON array with --json.
func printRecords[T fmt.Stringer](w io.Writer, records []T) error {
	if jsonOutput {
		return printJSON(w, records)
	}
	for _, r := range records {
		fmt.Fprintln(w, r)
	}
	cyan.Fprintf(w, "%d rows\n", len(records))
	return nil
}

func printRecord(w io.Writer, r fmt.Stringer) error {
	if jsonOutput {
		return printJSON(w, r)
	}
	fmt.Fprintln(w, r)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printAffected reports an update or delete; zero rows is a warning, not
// an error.
func printAffected(w io.Writer, what string, n int64) {
	if n == 0 {
		yellow.Fprintf(w, "no %s matched\n", what)
		return
	}
	green.Fprintf(w, "%s: %d row(s) affected\n", what, n)
}
