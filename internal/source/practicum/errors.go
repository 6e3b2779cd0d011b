package practicum

import (
	"errors"
	"fmt"
)

// Kind classifies every failure this package can produce. The poll loop
// matches on Kind instead of string-comparing error text.
type Kind int

const (
	KindUnknown Kind = iota
	// KindTransport covers failures of the network call itself: DNS,
	// connection refused, request timeout.
	KindTransport
	// KindUnexpectedStatus means the endpoint answered with a non-200 code.
	KindUnexpectedStatus
	// KindMalformedPayload means the body could not be decoded as JSON.
	KindMalformedPayload
	// KindSchema means the decoded payload is missing required fields or
	// carries them with the wrong shape.
	KindSchema
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUnexpectedStatus:
		return "unexpected_status"
	case KindMalformedPayload:
		return "malformed_payload"
	case KindSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// Error is the single error type of the API client and validator.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, msg: msg, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf extracts the Kind from err, or KindUnknown if err did not originate
// here.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
