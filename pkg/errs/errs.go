package errs

import "errors"

// Kind describes which class of expected error happened.
type Kind int

const (
	// KindInvalid marks errors caused by bad client input.
	KindInvalid Kind = iota
	// KindNotFound marks errors about a missing resource.
	KindNotFound
)

// Err represents a custom error type with a message.
type Err struct { //nolint:errname
	Message string `json:"message"`
	kind    Kind
}

var _ error = (*Err)(nil)

// New creates a new custom error with the given message.
func New(message string) *Err {
	return &Err{Message: message, kind: KindInvalid}
}

// NewNotFound creates a new custom error that reports a missing resource.
func NewNotFound(message string) *Err {
	return &Err{Message: message, kind: KindNotFound}
}

func (e *Err) Error() string {
	return e.Message
}

// Kind returns the class of the error.
func (e *Err) Kind() Kind {
	return e.kind
}

// IsExpected checks if the given error (or any error it wraps) is of custom Err type.
func IsExpected(err error) bool {
	var target *Err
	return errors.As(err, &target)
}

// IsNotFound checks if the given error is a custom error of KindNotFound.
func IsNotFound(err error) bool {
	var target *Err
	if !errors.As(err, &target) {
		return false
	}

	return target.kind == KindNotFound
}
