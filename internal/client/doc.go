// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the device agent runtime.
//
// It wires the loopback agent API, the sync coordinator and the background
// workers (connectivity prober, reconnect sweep) into a single process
// lifecycle.
package client
