// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// tree keeper server handlers, the device agent and the sync coordinator.
//
// All Msg* constants are human-readable message strings that are written into
// the "error" field of JSON envelopes or into log entries. Keeping them in one
// place ensures consistent wording between the remote API and the agent.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidTreeID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidTreeID = "invalid tree id"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTreeNotFound is returned when no tree with the requested id exists.
	MsgTreeNotFound = "Tree not found"

	// MsgDuplicateTree is returned when a tree with the same common or
	// scientific name (ignoring case) already exists.
	MsgDuplicateTree = "Tree with this Common Name or Scientific Name already exists."

	// MsgNamesRequired is returned by the lookup endpoint when a name is
	// missing.
	MsgNamesRequired = "common_name and scientific_name are required"

	// MsgOfflineUnavailable is returned by the device agent when an operation
	// needs the remote store and the device is offline.
	MsgOfflineUnavailable = "You are offline. Reconnect to the internet and try again."

	// MsgRemoteUnavailable is returned by the device agent when the remote
	// store failed or timed out. The request is safe to retry.
	MsgRemoteUnavailable = "The tree service is temporarily unavailable, please try again."
)
