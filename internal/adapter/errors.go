package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrUnavailable reports that the request did not reach the remote store
	// or no response came back in time.
	ErrUnavailable = errors.New("remote store unavailable")

	ErrDecodingResponse = errors.New("error decoding response")
)
