package store

import (
	"fmt"
	"strings"
)

// Statements holds the five statements an accessor issues. Placeholders are
// numbered left to right in the statement text, and arguments are bound in
// that same order.
type Statements struct {
	SelectAll   string
	SelectByKey string
	Insert      string
	Update      string
	Delete      string
}

func buildStatements[T any, K comparable](t Table[T, K]) Statements {
	cols := strings.Join(t.columnNames(), ", ")

	var s Statements
	s.SelectAll = fmt.Sprintf("SELECT %s FROM %s", cols, t.Name)
	s.SelectByKey = fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", cols, t.Name, t.KeyColumn)

	insertCols := make([]string, 0, len(t.Columns)+1)
	if !t.Generated {
		insertCols = append(insertCols, t.KeyColumn)
	}
	for _, c := range t.Columns {
		insertCols = append(insertCols, c.Name)
	}
	s.Insert = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(insertCols, ", "), placeholders(1, len(insertCols)))
	if t.Generated {
		s.Insert += " RETURNING " + t.KeyColumn
	}

	sets := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		sets[i] = fmt.Sprintf("%s = $%d", c.Name, i+1)
	}
	s.Update = fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		t.Name, strings.Join(sets, ", "), t.KeyColumn, len(t.Columns)+1)

	s.Delete = fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.Name, t.KeyColumn)
	return s
}

// placeholders renders "$from, ..., $(from+n-1)".
func placeholders(from, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ph, ", ")
}
