// Package exec sends bound queries to the database transport and returns
// typed result sets or classified failures. One call, one attempt: retry
// policy belongs to the caller.
package exec

import (
	"errors"
	"fmt"
)

// Kind classifies an execution failure.
type Kind int

const (
	// KindBinding is a caller programming error: template and bindings
	// disagree. Never retried.
	KindBinding Kind = iota
	// KindConnection is an infrastructure failure: unreachable host, failed
	// authentication, timeout. A caller may retry with backoff.
	KindConnection
	// KindQuery means the server rejected the statement: malformed SQL,
	// constraint violation, type mismatch. Not retried.
	KindQuery
)

func (k Kind) String() string {
	switch k {
	case KindBinding:
		return "binding"
	case KindConnection:
		return "connection"
	case KindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Error is a classified execution failure. The driver diagnostic is preserved
// in Err and reachable through errors.Unwrap / errors.As.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind, or KindQuery for errors that did not come
// from this package.
func KindOf(err error) Kind {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return KindQuery
}

func wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
