// Package gerror provides tagged errors: every error carries an ErrorCode
// callers can branch on, a human message and an optional cause.
package gerror

import (
	"fmt"

	"github.com/pkg/errors"
)

// Gerror is an error tagged with an ErrorCode.
type Gerror interface {
	error
	Tag() interface{}
	Message() string
	Cause() error
}

type gerror struct {
	tag     ErrorCode
	message string
	cause   error
}

// New returns a Gerror with given code and message.
func New(code ErrorCode, message string) Gerror {
	return &gerror{tag: code, message: message}
}

// Newf returns a Gerror with given code and formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) Gerror {
	return &gerror{tag: code, message: fmt.Sprintf(format, args...)}
}

// NewFromError tags cause with given code. The message of the returned error
// is the message of cause.
func NewFromError(code ErrorCode, cause error) Gerror {
	return &gerror{tag: code, message: cause.Error(), cause: cause}
}

// Wrap tags cause with given code and prefixes its message.
func Wrap(code ErrorCode, cause error, message string) Gerror {
	return &gerror{tag: code, message: message, cause: cause}
}

func (e *gerror) Error() string { return GetErrorMessage(e) }

// Tag returns the ErrorCode.
func (e *gerror) Tag() interface{} { return e.tag }

// Message returns the message without the code.
func (e *gerror) Message() string { return e.message }

// Cause returns the wrapped error, nil if there is none.
func (e *gerror) Cause() error { return e.cause }

// Unwrap makes the cause visible to errors.Is and errors.As.
func (e *gerror) Unwrap() error { return e.cause }

// GetErrorType returns the ErrorCode of the first Gerror in err's chain, or
// InternalError when there is none.
func GetErrorType(err error) ErrorCode {
	var gerr Gerror
	if errors.As(err, &gerr) {
		if code, ok := gerr.Tag().(ErrorCode); ok {
			return code
		}
	}
	return InternalError
}

// GetErrorMessage renders err as "<code>: <message>". Gerror causes are
// rendered recursively, other causes are appended after the message when
// the message does not already contain them.
func GetErrorMessage(err error) string {
	gerr, ok := err.(Gerror)
	if !ok {
		return err.Error()
	}
	cause := gerr.Cause()
	switch {
	case cause == nil:
		return fmt.Sprintf("%s: %s", gerr.Tag(), gerr.Message())
	case isGerror(cause):
		return fmt.Sprintf("%s: %s", gerr.Tag(), GetErrorMessage(cause))
	case gerr.Message() == cause.Error():
		return fmt.Sprintf("%s: %s", gerr.Tag(), gerr.Message())
	default:
		return fmt.Sprintf("%s: %s: %s", gerr.Tag(), gerr.Message(), cause.Error())
	}
}

func isGerror(err error) bool {
	_, ok := err.(Gerror)
	return ok
}
