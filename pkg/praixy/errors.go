package praixy

import (
	"errors"
	"fmt"
)

var (
	// errInvalidScheme is returned when the base URL scheme is not http(s).
	errInvalidScheme = errors.New("must use http or https scheme")

	// errMissingHost is returned when the base URL has no host component.
	errMissingHost = errors.New("must include a host")
)

// StatusError is returned when the proxy responds with a non-2xx status.
// The body is preserved verbatim for diagnosis; it is usually a JSON error
// document from the proxy or the upstream vendor API.
type StatusError struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("praixy: status %d: %s", e.StatusCode, e.Body)
}

// DecodeError is returned when a response body could not be decoded as the
// requested JSON shape. The raw body is preserved.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("praixy: decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is a StatusError with the given status code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
