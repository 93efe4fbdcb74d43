// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidTreeID is returned by path parsing when the {id} segment is not a
// positive integer.
var ErrInvalidTreeID = errors.New("invalid tree id in path")
