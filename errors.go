package jsonwriter

import (
	"errors"
	"fmt"
)

// Result is the status of a Writer.  Once it is not Ok it stays that way for
// the lifetime of the Writer.
type Result uint8

const (
	Ok             Result = iota
	SyntaxError           // the call is not allowed by the JSON grammar at this point
	ScopeOverflow         // too many nested containers
	ScopeUnderflow        // no open container where one is needed
	SinkFailure           // the sink returned an error
	InvalidNumber         // NaN, infinity or a bad precision
)

// String returns a human readable description of the result.
func (r Result) String() string {
	switch r {
	case Ok:
		return "No error"
	case SyntaxError:
		return "Syntax error"
	case ScopeOverflow:
		return "Scope overflow"
	case ScopeUnderflow:
		return "Scope underflow"
	case SinkFailure:
		return "Sink failure"
	case InvalidNumber:
		return "Invalid number"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// Sentinel errors, one per failed Result.  Errors returned by a Writer match
// them with errors.Is.
var (
	ErrSyntax         = errors.New("syntax error")
	ErrScopeOverflow  = errors.New("scope overflow")
	ErrScopeUnderflow = errors.New("scope underflow")
	ErrSinkFailure    = errors.New("sink failure")
	ErrInvalidNumber  = errors.New("invalid number")
)

func (r Result) sentinel() error {
	switch r {
	case SyntaxError:
		return ErrSyntax
	case ScopeOverflow:
		return ErrScopeOverflow
	case ScopeUnderflow:
		return ErrScopeUnderflow
	case SinkFailure:
		return ErrSinkFailure
	case InvalidNumber:
		return ErrInvalidNumber
	default:
		return nil
	}
}

// An Error is returned by the Writer operation that failed, and by every
// operation after it.
type Error struct {
	Op     string // name of the operation that failed, e.g. "EndObject"
	Result Result
	Reason string // optional detail
	Err    error  // error returned by the sink, if any
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("jsonwriter: %s: %s", e.Op, e.Result.sentinel())
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Is(target error) bool {
	return target != nil && target == e.Result.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Err
}
