package agent

import "errors"

var (
	// ErrInvalidTreeID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidTreeID = errors.New("invalid tree id in path")

	// ErrEmptyArtifact is returned when an attach request carries no QR data.
	ErrEmptyArtifact = errors.New("qr_code is empty")
)
