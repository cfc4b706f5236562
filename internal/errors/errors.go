// Package errors defines the closed set of failure kinds carton reports.
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies a class of failure.
type Kind string

const (
	PathExists         Kind = "path_exists"
	InvalidProjectName Kind = "invalid_project_name"
	NotAProject        Kind = "not_a_project"
	MalformedManifest  Kind = "malformed_manifest"
	UnsupportedKind    Kind = "unsupported_kind"
	NotRunnable        Kind = "not_runnable"
	ConfigureFailed    Kind = "configure_failed"
	CompileFailed      Kind = "compile_failed"
	TestsFailed        Kind = "tests_failed"
	LinkReplaceFailed  Kind = "link_replace_failed"
	ArtifactFailed     Kind = "artifact_failed"
	ToolMissing        Kind = "tool_missing"
	IOFailed           Kind = "io_failed"
	Usage              Kind = "usage"
)

// Error is a carton failure with a human-readable message.
type Error struct {
	Kind Kind
	Msg  string

	// Stage names the external tool step that failed, if any.
	Stage string

	// ExitStatus is the child's exit status for tool and artifact failures.
	ExitStatus int

	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same kind. Both *Error and a bare
// Kind are accepted as targets.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *Error:
		return t.Kind == e.Kind
	case Kind:
		return t == e.Kind
	}
	return false
}

// Error lets a Kind be used directly as an errors.Is target.
func (k Kind) Error() string {
	return string(k)
}

// New creates an Error of the given kind.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind around cause.
func Wrap(kind Kind, cause error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// ToolFailure creates an Error for an external tool that exited with status.
func ToolFailure(kind Kind, stage string, status int, format string, args ...any) error {
	return &Error{
		Kind:       kind,
		Msg:        fmt.Sprintf(format, args...),
		Stage:      stage,
		ExitStatus: status,
	}
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	if ce, ok := As(err); ok {
		return ce.Kind
	}
	return ""
}

// ExitCode maps err to a process exit status.
// nil is 0, a failed artifact exits with its own status, usage errors are 2
// and everything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	ce, ok := As(err)
	if !ok {
		return 1
	}
	switch ce.Kind {
	case ArtifactFailed:
		if ce.ExitStatus > 0 {
			return ce.ExitStatus
		}
		return 1
	case Usage:
		return 2
	}
	return 1
}
