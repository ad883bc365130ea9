package api

import "errors"

var (
	// ErrUnavailable indicates a transport failure: the server could not be
	// reached or returned a body that is not the expected JSON envelope.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized indicates the bearer token was missing, expired, or
	// rejected on an authenticated call.
	ErrUnauthorized = errors.New("unauthorized")
)

// ServerError is a rejection reported through the response envelope
// (success:false). Message carries the server-supplied text, which may be
// empty.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return "request rejected by server"
	}
	return e.Message
}
