// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks tree records and partial updates before they
// reach a store.
//
// The same Validator guards both sides of the sync engine: the remote tree
// service rejects malformed creates and updates, and the device coordinator
// validates input before it touches the local cache, so an invalid record
// never has to be rolled back.
//
// Callers may scope a call to a subset of fields (see the Field* constants);
// without fields the full rule set for the given type is applied.
package validators

import "context"

// Validator validates a value, optionally restricted to named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
