package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Accessor runs the five canonical operations against one table.
// It holds no state between calls besides the provider and is safe for
// concurrent use when the provider is.
type Accessor[T any, K comparable] struct {
	provider Provider
	table    Table[T, K]
	stmts    Statements

	// positions maps a lowercased column name to its index in
	// table.columnNames(); 0 is the key.
	positions map[string]int
}

// NewAccessor builds an accessor for the table.
// Panics if the table definition is invalid, as that is a programming error.
func NewAccessor[T any, K comparable](provider Provider, table Table[T, K]) *Accessor[T, K] {
	if provider == nil {
		panic("store: nil provider")
	}
	if err := table.validate(); err != nil {
		panic("store: " + err.Error())
	}

	names := table.columnNames()
	positions := make(map[string]int, len(names))
	for i, name := range names {
		positions[strings.ToLower(name)] = i
	}

	return &Accessor[T, K]{
		provider:  provider,
		table:     table,
		stmts:     buildStatements(table),
		positions: positions,
	}
}

// TableName returns the table this accessor reads and writes.
func (a *Accessor[T, K]) TableName() string {
	return a.table.Name
}

// Statements returns the statements this accessor issues.
func (a *Accessor[T, K]) Statements() Statements {
	return a.stmts
}

// GetAll returns every row of the table. The order is whatever the store
// returns and must not be relied on.
func (a *Accessor[T, K]) GetAll(ctx context.Context) ([]T, error) {
	var records []T
	err := a.withConn(ctx, func(conn Conn) error {
		rows, err := conn.Query(ctx, a.stmts.SelectAll)
		if err != nil {
			return newStatementError(a.table.Name, OpGetAll, err)
		}
		records, err = pgx.CollectRows(rows, a.mapRow)
		if err != nil {
			return newStatementError(a.table.Name, OpGetAll, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Find returns the row whose key equals key. A missing row yields an error
// wrapping ErrNotFound; store failures yield ConnectionError or
// StatementError instead.
func (a *Accessor[T, K]) Find(ctx context.Context, key K) (T, error) {
	var record T
	err := a.withConn(ctx, func(conn Conn) error {
		rows, err := conn.Query(ctx, a.stmts.SelectByKey, key)
		if err != nil {
			return newStatementError(a.table.Name, OpFind, err)
		}
		record, err = pgx.CollectOneRow(rows, a.mapRow)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s %s=%v: %w", a.table.Name, a.table.KeyColumn, key, ErrNotFound)
		}
		if err != nil {
			return newStatementError(a.table.Name, OpFind, err)
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// Add inserts record and returns the stored copy. For generated keys the
// returned copy carries the key the store assigned; record itself is not
// modified. On failure the zero record is returned with the error.
func (a *Accessor[T, K]) Add(ctx context.Context, record T) (T, error) {
	args := a.insertArgs(&record)
	err := a.withConn(ctx, func(conn Conn) error {
		if a.table.Generated {
			var key K
			if err := conn.QueryRow(ctx, a.stmts.Insert, args...).Scan(&key); err != nil {
				return newStatementError(a.table.Name, OpAdd, err)
			}
			*a.table.Key(&record) = key
			return nil
		}
		if _, err := conn.Exec(ctx, a.stmts.Insert, args...); err != nil {
			return newStatementError(a.table.Name, OpAdd, err)
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// Update writes every non-key column of record to the row with the same key
// and returns the number of rows affected. Zero means no row had that key.
func (a *Accessor[T, K]) Update(ctx context.Context, record T) (int64, error) {
	args := make([]any, 0, len(a.table.Columns)+1)
	for _, c := range a.table.Columns {
		args = append(args, c.value(&record))
	}
	args = append(args, *a.table.Key(&record))

	var affected int64
	err := a.withConn(ctx, func(conn Conn) error {
		tag, err := conn.Exec(ctx, a.stmts.Update, args...)
		if err != nil {
			return newStatementError(a.table.Name, OpUpdate, err)
		}
		affected = tag.RowsAffected()
		return nil
	})
	return affected, err
}

// Delete removes the row with the given key and returns the number of rows
// affected.
func (a *Accessor[T, K]) Delete(ctx context.Context, key K) (int64, error) {
	var affected int64
	err := a.withConn(ctx, func(conn Conn) error {
		tag, err := conn.Exec(ctx, a.stmts.Delete, key)
		if err != nil {
			return newStatementError(a.table.Name, OpDelete, err)
		}
		affected = tag.RowsAffected()
		return nil
	})
	return affected, err
}

// withConn borrows one connection for the duration of fn and always
// returns it.
func (a *Accessor[T, K]) withConn(ctx context.Context, fn func(Conn) error) error {
	conn, err := a.provider.Acquire(ctx)
	if err != nil {
		if !IsConnection(err) {
			err = &ConnectionError{Err: err}
		}
		return err
	}
	defer conn.Release()

	return fn(conn)
}

// insertArgs returns the insert parameters in statement order.
func (a *Accessor[T, K]) insertArgs(record *T) []any {
	args := make([]any, 0, len(a.table.Columns)+1)
	if !a.table.Generated {
		args = append(args, *a.table.Key(record))
	}
	for _, c := range a.table.Columns {
		args = append(args, c.value(record))
	}
	return args
}

// mapRow converts one result row into a record, matching result columns to
// declared columns by name.
func (a *Accessor[T, K]) mapRow(row pgx.CollectableRow) (T, error) {
	var record T

	fields := row.FieldDescriptions()
	targets := make([]any, len(fields))
	matched := make([]bool, len(a.positions))
	for i, fd := range fields {
		pos, ok := a.positions[strings.ToLower(fd.Name)]
		if !ok {
			return record, fmt.Errorf("%w: result column %q not declared on %s", ErrUnmappedColumn, fd.Name, a.table.Name)
		}
		if matched[pos] {
			return record, fmt.Errorf("%w: result column %q appears twice", ErrUnmappedColumn, fd.Name)
		}
		matched[pos] = true
		targets[i] = a.target(pos, &record)
	}
	for pos, ok := range matched {
		if !ok {
			return record, fmt.Errorf("%w: column %q missing from result", ErrUnmappedColumn, a.columnName(pos))
		}
	}

	if err := row.Scan(targets...); err != nil {
		return record, err
	}
	return record, nil
}

func (a *Accessor[T, K]) target(pos int, record *T) any {
	if pos == 0 {
		return a.table.Key(record)
	}
	return a.table.Columns[pos-1].ptr(record)
}

func (a *Accessor[T, K]) columnName(pos int) string {
	if pos == 0 {
		return a.table.KeyColumn
	}
	return a.table.Columns[pos-1].Name
}
