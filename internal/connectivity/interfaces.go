// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connectivity tracks whether the remote tree store is reachable.
//
// A [Monitor] exposes the current state and publishes edge-triggered
// [Event] values: subscribers are notified only when the state flips between
// online and offline, never on repeated signals of the same state.
//
// [Switch] holds the state and is driven either explicitly by the host
// (the agent's connectivity endpoint) or by a [Prober] that polls the
// remote health endpoint.
package connectivity

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/connectivity_mock.go -package=mock

// Event describes a single connectivity transition.
type Event struct {
	Online bool
	At     time.Time
}

// Monitor reports reachability of the remote store.
type Monitor interface {
	// Online reports the current state.
	Online() bool

	// Subscribe returns a channel receiving every subsequent transition.
	// The channel is closed when the monitor is closed.
	Subscribe() <-chan Event
}

// Pinger checks reachability of the remote store.
type Pinger interface {
	Ping(ctx context.Context) error
}
