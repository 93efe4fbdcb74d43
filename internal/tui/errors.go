// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-tree-keeper/internal/app"
	"github.com/MKhiriev/go-tree-keeper/internal/service"
)

// humanizeError turns coordinator errors into the text shown on screen.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrOfflineUnavailable):
		return app.MsgOfflineUnavailable
	case errors.Is(err, service.ErrDuplicateTree):
		return app.MsgDuplicateTree
	case errors.Is(err, service.ErrTreeNotFound):
		return app.MsgTreeNotFound
	case errors.Is(err, service.ErrTransient):
		return app.MsgRemoteUnavailable
	}
	return err.Error()
}
