package core

// error_messages.go maps technical errors to user-facing messages.
//
// Typed errors from package store are classified first (errors.Is /
// errors.As), so a wrapped error keeps its code no matter how its text
// reads. Anything left falls back to case-insensitive pattern matching on
// the error text, first match wins.
//
//	DB001   Duplicate key         unique_violation / "duplicate key"
//	DB002   Missing value         not_null_violation / check_violation
//	DB003   Foreign key           foreign_key_violation (e.g. deleting a
//	                              shipper still referenced by orders)
//	DB004   Connection            store.ConnectionError / "connection refused"
//	DB005   Connection reset      "connection reset"
//	DB006   Timeout               context.DeadlineExceeded / "timeout"
//	DB007   Deadlock              "deadlock"
//	DB008   Invalid value         numeric_value_out_of_range / string_data_right_truncation
//	                              and the rest of SQLSTATE class 22
//	DB009   Schema mismatch       undefined_table / undefined_column
//	NF001   Not found             store.ErrNotFound
//	REQ001  Invalid identifier    ErrInvalidID
//	REQ002  Invalid body          ErrInvalidBody
//	AUTH001 Missing API key
//	AUTH002 Invalid API key
//	RATE001 Rate limited          "rate limit"
//	ERR000  Unknown               fallback; check logs for the original error

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/JonMunkholm/northwind/internal/store"
)

// ErrInvalidID is wrapped when a caller passes a key that cannot be parsed
// into the entity's key type.
var ErrInvalidID = errors.New("invalid id")

// ErrInvalidBody is wrapped when a request body cannot be decoded.
var ErrInvalidBody = errors.New("invalid request body")

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Support reference
}

var (
	msgDuplicateKey = UserMessage{
		Message: "A record with this ID already exists",
		Action:  "Choose a different ID or update the existing record",
		Code:    "DB001",
	}
	msgMissingValue = UserMessage{
		Message: "A required value is missing or not allowed",
		Action:  "Fill in every required field",
		Code:    "DB002",
	}
	msgForeignKey = UserMessage{
		Message: "The record is referenced by, or references, another record",
		Action:  "Remove or fix the related records first",
		Code:    "DB003",
	}
	msgConnection = UserMessage{
		Message: "Unable to connect to database",
		Action:  "Please try again in a few moments",
		Code:    "DB004",
	}
	msgTimeout = UserMessage{
		Message: "Operation timed out",
		Action:  "Please try again later",
		Code:    "DB006",
	}
	msgInvalidValue = UserMessage{
		Message: "A value does not fit its column",
		Action:  "Check field lengths and numeric ranges",
		Code:    "DB008",
	}
	msgSchema = UserMessage{
		Message: "The database tables are missing or out of date",
		Action:  "Run 'northwind seed' to create the tables",
		Code:    "DB009",
	}
	msgNotFound = UserMessage{
		Message: "Record not found",
		Action:  "Check the ID and try again",
		Code:    "NF001",
	}
	msgInvalidID = UserMessage{
		Message: "The ID is not valid for this entity",
		Action:  "Shipper and product IDs are integers",
		Code:    "REQ001",
	}
	msgInvalidBody = UserMessage{
		Message: "The request body could not be read",
		Action:  "Send a JSON object with the entity's fields",
		Code:    "REQ002",
	}
	msgCancelled = UserMessage{
		Message: "Request was cancelled",
		Action:  "Please try again",
		Code:    "ERR001",
	}
)

// errorPattern maps a case-insensitive substring to a message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns is consulted after typed classification. Order matters:
// specific patterns come before general ones.
var errorPatterns = []errorPattern{
	{pattern: "duplicate key", msg: msgDuplicateKey},
	{pattern: "violates unique", msg: msgDuplicateKey},
	{pattern: "violates foreign key", msg: msgForeignKey},
	{pattern: "violates not-null", msg: msgMissingValue},
	{pattern: "connection refused", msg: msgConnection},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB005",
		},
	},
	{pattern: "context deadline exceeded", msg: msgTimeout},
	{pattern: "timeout", msg: msgTimeout},
	{
		pattern: "deadlock",
		msg: UserMessage{
			Message: "Database was busy with conflicting operations",
			Action:  "Please try again",
			Code:    "DB007",
		},
	},
	{pattern: "context canceled", msg: msgCancelled},
	{
		pattern: "missing api key",
		msg: UserMessage{
			Message: "An API key is required",
			Action:  "Send the X-API-Key header",
			Code:    "AUTH001",
		},
	},
	{
		pattern: "invalid api key",
		msg: UserMessage{
			Message: "The API key was rejected",
			Action:  "Check the configured API keys",
			Code:    "AUTH002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// A nil error yields the zero UserMessage.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	if msg, ok := classify(err); ok {
		return msg
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// classify maps the typed errors of this module.
func classify(err error) (UserMessage, bool) {
	switch {
	case store.IsNotFound(err):
		return msgNotFound, true
	case errors.Is(err, ErrInvalidID):
		return msgInvalidID, true
	case errors.Is(err, ErrInvalidBody):
		return msgInvalidBody, true
	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout, true
	case errors.Is(err, context.Canceled):
		return msgCancelled, true
	case store.IsConnection(err):
		return msgConnection, true
	case store.IsUniqueViolation(err):
		return msgDuplicateKey, true
	case store.IsForeignKeyViolation(err):
		return msgForeignKey, true
	}

	var se *store.StatementError
	if errors.As(err, &se) {
		switch se.Code {
		case store.PgErrNotNullViolation, store.PgErrCheckViolation:
			return msgMissingValue, true
		case store.PgErrNumericValueOutOfRange, store.PgErrStringDataTruncation:
			return msgInvalidValue, true
		case store.PgErrUndefinedTable, store.PgErrUndefinedColumn:
			return msgSchema, true
		}
		if strings.HasPrefix(se.Code, "22") {
			return msgInvalidValue, true
		}
	}
	return UserMessage{}, false
}

// HTTPStatus picks the response status for err.
func HTTPStatus(err error) int {
	switch MapError(err).Code {
	case "":
		return http.StatusOK
	case msgNotFound.Code:
		return http.StatusNotFound
	case msgInvalidID.Code, msgInvalidBody.Code:
		return http.StatusBadRequest
	case msgDuplicateKey.Code, msgForeignKey.Code:
		return http.StatusConflict
	case msgMissingValue.Code, msgInvalidValue.Code:
		return http.StatusUnprocessableEntity
	case msgConnection.Code, "DB005":
		return http.StatusServiceUnavailable
	case msgTimeout.Code:
		return http.StatusGatewayTimeout
	case "AUTH001":
		return http.StatusUnauthorized
	case "AUTH002":
		return http.StatusForbidden
	case "RATE001":
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// FormatUserError renders err as "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-facing message.
// Error() yields the user message; Unwrap() yields the original for logs.
type UserError struct {
	Technical error
	User      UserMessage
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
