package service

import (
	"errors"
	"fmt"
)

// ErrKind is the closed set of failure categories surfaced to the transport layer.
type ErrKind int

const (
	KindUnexpected ErrKind = iota
	KindNotFound
	KindUnauthenticated
	// KindBadReference: a required foreign key is missing or points nowhere.
	KindBadReference
	// KindValidation: the payload or the store rejected a write.
	KindValidation
	KindIntegrity
)

func (k ErrKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindBadReference:
		return "bad_reference"
	case KindValidation:
		return "validation"
	case KindIntegrity:
		return "integrity"
	default:
		return "unexpected"
	}
}

// Error carries a public Message and, in Err, the detail that only goes to logs.
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

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err; anything that is not an *Error is unexpected.
func KindOf(err error) ErrKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindUnexpected
}

const (
	msgUserNotFound        = "User not found"
	msgTaskNotFound        = "Task not found"
	msgUserIDRequired      = "user_id is required"
	msgInvalidUserID       = "Invalid user_id"
	msgInvalidTaskID       = "Invalid task_id"
	msgInvalidDueDate      = "Invalid due_date, expected YYYY-MM-DD"
	msgEmailTaken          = "Email already registered"
	msgUnauthorized        = "401 Unauthorized"
	msgInternal            = "Internal server error"
	msgTaskDeleteIntegrity = "Integrity error occurred while deleting task"
)
