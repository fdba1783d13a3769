package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the accessors classify.
const (
	PgErrUniqueViolation     = "23505" // unique_violation
	PgErrForeignKeyViolation = "23503" // foreign_key_violation
	PgErrNotNullViolation    = "23502" // not_null_violation
	PgErrCheckViolation      = "23514" // check_violation

	PgErrNumericValueOutOfRange = "22003" // numeric_value_out_of_range
	PgErrStringDataTruncation   = "22001" // string_data_right_truncation

	PgErrUndefinedTable  = "42P01" // undefined_table
	PgErrUndefinedColumn = "42703" // undefined_column
)

// ErrNotFound is returned by Find when no row matches the key. It is a
// normal outcome, not a store failure.
var ErrNotFound = errors.New("record not found")

// ErrUnmappedColumn is wrapped when a result row carries a column the table
// does not declare, or lacks one it does.
var ErrUnmappedColumn = errors.New("unmapped column")

// ConnectionError reports that no connection could be obtained.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "connection unavailable: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Op names an accessor operation in errors and logs.
type Op string

const (
	OpGetAll Op = "get all"
	OpFind   Op = "find"
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// StatementError reports that the store rejected or failed a statement.
// Code holds the SQLSTATE when the failure came from the server.
type StatementError struct {
	Table string
	Op    Op
	Code  string
	Err   error
}

func (e *StatementError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s %s (SQLSTATE %s): %v", e.Op, e.Table, e.Code, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

func newStatementError(table string, op Op, err error) *StatementError {
	se := &StatementError{Table: table, Op: op, Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		se.Code = pgErr.Code
	}
	return se
}

// IsNotFound reports whether err signals a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUniqueViolation reports whether err is a duplicate key rejection.
func IsUniqueViolation(err error) bool {
	return sqlState(err) == PgErrUniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign key rejection.
func IsForeignKeyViolation(err error) bool {
	return sqlState(err) == PgErrForeignKeyViolation
}

// IsConnection reports whether err means no connection could be obtained.
func IsConnection(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

func sqlState(err error) string {
	var se *StatementError
	if errors.As(err, &se) && se.Code != "" {
		return se.Code
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
