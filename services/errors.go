package services

import "errors"

// ErrorKind classifies a failure so handlers can map it to a status code.
// Policy decisions (forbidden), bad input (validation) and infrastructure
// faults must stay distinguishable outcomes.
type ErrorKind int

const (
	KindInfrastructure ErrorKind = iota
	KindValidation
	KindForbidden
	KindNotFound
	KindPaymentDeclined
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err. Anything untyped is treated as an
// infrastructure fault.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInfrastructure
}
