package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidTree wraps validator errors for create and update input.
	ErrInvalidTree = errors.New("invalid tree")

	// ErrDuplicateTree reports that a tree with the same common or
	// scientific name (ignoring case) is already stored remotely.
	ErrDuplicateTree = errors.New("tree with this common name or scientific name already exists")

	ErrTreeNotFound = errors.New("tree not found")

	// ErrOfflineUnavailable reports that an operation needs the remote store
	// while the device is offline.
	ErrOfflineUnavailable = errors.New("operation requires network connection")

	// ErrTransient reports a timeout, transport failure or 5xx from the
	// remote store. The operation is safe to retry.
	ErrTransient = errors.New("remote store temporarily unavailable")
)
