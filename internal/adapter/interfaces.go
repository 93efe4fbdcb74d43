// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote tree store.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// coordinator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404). A request
// that never produced a response is reported as [ErrUnavailable].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tree-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote tree
// store. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// CreateTree asks the remote store to allocate an id for tree and persist
	// it. Returns the stored record including id and timestamps, or
	// [ErrConflict] (wrapped) when a tree with either name already exists.
	CreateTree(ctx context.Context, tree models.Tree) (models.Tree, error)

	// GetTree fetches a tree by id. Returns [ErrNotFound] (wrapped) when the
	// remote store has no such record.
	GetTree(ctx context.Context, id int64) (models.Tree, error)

	// UpdateTree applies the non-nil fields of update to the remote record and
	// returns the updated tree. Returns [ErrNotFound] (wrapped) when the
	// record does not exist remotely.
	UpdateTree(ctx context.Context, id int64, update models.TreeUpdate) (models.Tree, error)

	// FindTreeByNames returns the remote tree whose common or scientific name
	// equals the given ones ignoring case. Returns [ErrNotFound] (wrapped)
	// when there is none.
	FindTreeByNames(ctx context.Context, commonName, scientificName string) (models.Tree, error)

	// ListTrees returns every remote tree ordered by id descending.
	ListTrees(ctx context.Context) ([]models.Tree, error)

	// Ping checks that the remote store answers its health endpoint.
	Ping(ctx context.Context) error
}
