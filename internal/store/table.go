package store

import (
	"fmt"
	"regexp"
	"strings"
)

// Column binds one table column to a field of the record type T.
// Build columns with [Field].
type Column[T any] struct {
	Name  string
	value func(*T) any // value bound as a statement parameter
	ptr   func(*T) any // scan target during row mapping
}

// Field declares a column whose value lives at the field returned by f.
// The field's Go type decides how the column is bound and read, so a text
// column must map to string or pgtype.Text, an integer column to an int, and
// so on.
//
//	store.Field("CompanyName", func(s *model.Shipper) *string { return &s.CompanyName })
func Field[T, V any](name string, f func(*T) *V) Column[T] {
	return Column[T]{
		Name:  name,
		value: func(r *T) any { return *f(r) },
		ptr:   func(r *T) any { return f(r) },
	}
}

// Table describes how records of type T keyed by K are stored.
type Table[T any, K comparable] struct {
	// Name is the table name as written in statements.
	Name string

	// KeyColumn is the primary key column name.
	KeyColumn string

	// Key returns the address of the key field of a record.
	Key func(*T) *K

	// Generated marks a store-assigned key. Inserts then omit the key
	// column and read it back with RETURNING.
	Generated bool

	// Columns lists the non-key columns in declared order. This order fixes
	// the SET clause of updates and the VALUES list of inserts.
	Columns []Column[T]
}

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validate checks the table can be rendered into statements safely.
func (t Table[T, K]) validate() error {
	if !identRegex.MatchString(t.Name) {
		return fmt.Errorf("invalid table name %q", t.Name)
	}
	if !identRegex.MatchString(t.KeyColumn) {
		return fmt.Errorf("table %s: invalid key column %q", t.Name, t.KeyColumn)
	}
	if t.Key == nil {
		return fmt.Errorf("table %s: key accessor is nil", t.Name)
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("table %s: no columns declared", t.Name)
	}

	seen := map[string]bool{strings.ToLower(t.KeyColumn): true}
	for _, c := range t.Columns {
		if !identRegex.MatchString(c.Name) {
			return fmt.Errorf("table %s: invalid column %q", t.Name, c.Name)
		}
		if c.value == nil || c.ptr == nil {
			return fmt.Errorf("table %s: column %s was not built with Field", t.Name, c.Name)
		}
		lower := strings.ToLower(c.Name)
		if seen[lower] {
			return fmt.Errorf("table %s: duplicate column %s", t.Name, c.Name)
		}
		seen[lower] = true
	}
	return nil
}

// columnNames returns the key column followed by the declared columns.
func (t Table[T, K]) columnNames() []string {
	names := make([]string, 0, len(t.Columns)+1)
	names = append(names, t.KeyColumn)
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}
