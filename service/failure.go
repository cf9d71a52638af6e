package service

import (
	"errors"
)

type FailureKind string

const (
	MalformedInput  FailureKind = "malformed_input"
	UpstreamFault   FailureKind = "upstream_fault"
	UnexpectedShape FailureKind = "unexpected_shape"
)

// Failure tags an error with the pipeline stage that produced it. Its message
// is the wrapped error's message, unchanged.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func fail(kind FailureKind, err error) error {
	return &Failure{Kind: kind, Err: err}
}

// Malformed marks err as a client input problem.
func Malformed(err error) error {
	return fail(MalformedInput, err)
}

// KindOf returns the kind of the first Failure in err's chain. Errors that
// were never classified count as upstream faults.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return UpstreamFault
}
