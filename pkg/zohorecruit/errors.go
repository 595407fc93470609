package zohorecruit

import (
	"errors"
	"fmt"
	"net"
	"net/url"

	goerrors "github.com/go-errors/errors"
)

// Kind classifies adapter failures
type Kind string

const (
	KindConfiguration  Kind = "CONFIGURATION"
	KindNetwork        Kind = "NETWORK"
	KindAuthentication Kind = "AUTHENTICATION"
	KindVendor         Kind = "VENDOR"
)

// Error is returned by every Client operation that can fail
type Error struct {
	Kind    Kind
	Op      string
	Message string
	// Status and Body are set when the vendor answered
	Status int
	Code   string
	Body   string
	Err    error
	Stack  []byte
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("zohorecruit: %s: %s", e.Op, e.Message)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Code != "" {
		msg += " [" + e.Code + "]"
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StackTrace() []byte {
	return e.Stack
}

func newError(kind Kind, op, message string, err error) *Error {
	var stack []byte
	if err != nil {
		var ge *goerrors.Error
		if errors.As(err, &ge) {
			stack = ge.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func configurationError(op, message string) *Error {
	return newError(KindConfiguration, op, message, nil)
}

func networkError(op string, err error) *Error {
	return newError(KindNetwork, op, "vendor unreachable", err)
}

func authenticationError(op, message string, err error) *Error {
	return newError(KindAuthentication, op, message, err)
}

func vendorError(op string, status int, code, body string) *Error {
	e := newError(KindVendor, op, "vendor rejected request", nil)
	e.Status = status
	e.Code = code
	e.Body = body
	return e
}

// KindOf reports the Kind of err, or "" when err did not come from this package
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given Kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// transportFailure reports whether err happened before any response arrived
func transportFailure(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
