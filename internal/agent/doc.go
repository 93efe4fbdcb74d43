// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package agent implements the loopback HTTP API of the device agent.
//
// The device UI talks only to this API. Every tree operation is delegated to
// the sync coordinator, which decides between the local cache and the remote
// store. The host reports network changes through the connectivity endpoint.
package agent
