// Package cnerrors carries the two-tier error taxonomy the consensus
// packages use: AssertError for invariant violations that indicate a bug
// in the caller, and RuleError for the recoverable classes named in the
// specification (ParseError, Conflict, AuthError, ...).
package cnerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// AssertError signals a violated invariant: something the caller promised
// and did not deliver. It is not meant to be recovered from gracefully.
type AssertError string

func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// Assert panics with an AssertError if cond is false.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(AssertError(fmt.Sprintf(format, args...)))
	}
}

// Code classifies a RuleError.
type Code int

const (
	CodeUnknown Code = iota
	CodeParse
	CodeConflict
	CodeOverflow
	CodeAuth
	CodeTransport
	CodePersistence
)

func (c Code) String() string {
	switch c {
	case CodeParse:
		return "parse-error"
	case CodeConflict:
		return "conflict"
	case CodeOverflow:
		return "overflow"
	case CodeAuth:
		return "auth-error"
	case CodeTransport:
		return "transport-error"
	case CodePersistence:
		return "persistence-error"
	default:
		return "unknown"
	}
}

// RuleError is a recoverable, tagged failure. Callers switch on Code to
// decide how to react; Description is for logs and operators.
type RuleError struct {
	Code        Code
	Description string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// NewRuleError builds a RuleError, wrapping it with a stack trace via
// github.com/pkg/errors so the originating frame survives across the
// checkpoint loaders and the MMS transport boundary.
func NewRuleError(code Code, description string) error {
	return errors.WithStack(&RuleError{Code: code, Description: description})
}

// AsRuleError unwraps err looking for a *RuleError, following
// github.com/pkg/errors' Cause chain.
func AsRuleError(err error) (*RuleError, bool) {
	for err != nil {
		if re, ok := err.(*RuleError); ok {
			return re, true
		}
		cause := errors.Cause(err)
		if cause == err {
			return nil, false
		}
		err = cause
	}
	return nil, false
}
