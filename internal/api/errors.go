package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies request failures so callers can branch on the
// failure class instead of parsing message text.
type ErrorKind int

const (
	// KindNetwork means the server could not be reached at all.
	KindNetwork ErrorKind = iota

	// KindUnauthorized covers 401 and 403 responses.
	KindUnauthorized

	// KindClient covers the remaining 4xx responses.
	KindClient

	// KindServer covers 5xx responses.
	KindServer

	// KindMalformed means the response body could not be decoded.
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	case KindMalformed:
		return "malformed"
	}
	return "unknown"
}

// Error is the failure surfaced by every Client call. Message holds the
// backend's "detail" string when one was present.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// AsError unwraps err into *Error when possible.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return KindUnauthorized
	case status >= 400 && status < 500:
		return KindClient
	default:
		return KindServer
	}
}
