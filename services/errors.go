package services

import (
	"errors"
	"fmt"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql"
)

// ErrKind classifies a failure so transport code can pick a status without
// inspecting messages. Everything except KindInfrastructure is a caller
// mistake or a legitimate business conflict and must not be retried blindly.
type ErrKind int

const (
	KindValidation ErrKind = iota + 1
	KindNotFound
	KindConflict
	KindInvalidTransition
	KindInfrastructure
)

type Error struct {
	Kind    ErrKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func InvalidTransition(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

// Infrastructure wraps a store-level failure. The original error is kept for
// logs; callers only ever see the generic message.
func Infrastructure(err error, message string) *Error {
	return &Error{Kind: KindInfrastructure, Message: message, Err: err}
}

// KindOf extracts the kind from err, defaulting unknown errors to
// infrastructure failures.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInfrastructure
}

// isDuplicateKey detects unique-index violations on both supported drivers:
// MySQL error 1062 and the SQLite constraint message.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysqldrv.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}
