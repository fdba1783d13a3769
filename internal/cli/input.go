package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JonMunkholm/northwind/internal/core"
	"github.com/spf13/cobra"
)

// recordInput is where add and update read their JSON record from:
// --data inline, or --file with "-" meaning stdin.
type recordInput struct {
	data string
	file string
}

func (in *recordInput) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.data, "data", "", "record as a JSON object")
	cmd.Flags().StringVarP(&in.file, "file", "f", "", `file holding the JSON record ("-" for stdin)`)
	cmd.MarkFlagsMutuallyExclusive("data", "file")
	cmd.MarkFlagsOneRequired("data", "file")
	cobra.CheckErr(cmd.MarkFlagFilename("file", "json"))
}

func (in recordInput) open(stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case in.data != "":
		return io.NopCloser(strings.NewReader(in.data)), nil
	case in.file == "-":
		return io.NopCloser(stdin), nil
	case in.file != "":
		return os.Open(in.file)
	default:
		return nil, errors.New("one of --data or --file is required")
	}
}

// readRecord decodes exactly one JSON object into T. Unknown fields are
// rejected so a misspelt column is not silently dropped.
func readRecord[T any](in recordInput, stdin io.Reader) (T, error) {
	var record T

	r, err := in.open(stdin)
	if err != nil {
		return record, err
	}
	defer r.Close()

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&record); err != nil {
		return record, fmt.Errorf("%w: %v", core.ErrInvalidBody, err)
	}
	if dec.More() {
		return record, fmt.Errorf("%w: more than one JSON value", core.ErrInvalidBody)
	}
	return record, nil
}
