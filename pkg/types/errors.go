package types

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates query failures so internal callers can branch on
// the failure class. The MCP boundary flattens every kind to the same
// text-plus-failure-flag envelope.
type ErrorKind int

const (
	KindUsage ErrorKind = iota + 1
	KindNotFound
	KindCollaborator
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindNotFound:
		return "not_found"
	case KindCollaborator:
		return "collaborator"
	default:
		return "internal"
	}
}

// QueryError is a classified failure from any query operation.
type QueryError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Usagef builds a UsageError: the caller supplied an invalid argument
// (bad domain token, missing required combination).
func Usagef(format string, args ...interface{}) error {
	return &QueryError{Kind: KindUsage, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFoundError: a required single-entity lookup matched
// nothing. Distinct from an empty-list success on list operations.
func NotFoundf(format string, args ...interface{}) error {
	return &QueryError{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Collaboratorf builds a CollaboratorError wrapping the underlying cause
// (process failure, timeout, malformed output).
func Collaboratorf(cause error, format string, args ...interface{}) error {
	return &QueryError{Kind: KindCollaborator, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf returns the error's kind, or KindInternal for unclassified errors.
func KindOf(err error) ErrorKind {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsUsage reports whether err is a UsageError.
func IsUsage(err error) bool {
	return KindOf(err) == KindUsage
}
