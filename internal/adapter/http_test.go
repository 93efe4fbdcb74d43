// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-tree-keeper/internal/config"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/utils"
	"github.com/MKhiriev/go-tree-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, data any, errMsg string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := models.Response{Success: errMsg == "", Data: data, Error: errMsg}
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func oak() models.Tree {
	return models.Tree{
		CommonName:     "Oak",
		ScientificName: "Quercus robur",
		Benefits:       []string{"shade", "habitat"},
		Images:         []string{},
		HealthStatus:   models.HealthStatusHealthy,
	}
}

// ── CreateTree ──────────────────────────────────────────────────────────────

func TestCreateTree_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/trees", r.URL.Path)

		var got models.Tree
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Oak", got.CommonName)

		got.ID = 5
		writeEnvelope(t, w, http.StatusCreated, got, "")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	created, err := a.CreateTree(context.Background(), oak())

	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, []string{"shade", "habitat"}, created.Benefits)
}

func TestCreateTree_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusConflict, nil, "Tree with this Common Name or Scientific Name already exists.")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateTree(context.Background(), oak())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateTree_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateTree(context.Background(), oak())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestCreateTree_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.CreateTree(context.Background(), oak())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCreateTree_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateTree(context.Background(), oak())

	assert.ErrorIs(t, err, ErrDecodingResponse)
}

// ── GetTree ─────────────────────────────────────────────────────────────────

func TestGetTree_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/trees/7", r.URL.Path)

		tree := oak()
		tree.ID = 7
		writeEnvelope(t, w, http.StatusOK, tree, "")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetTree(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Quercus robur", got.ScientificName)
}

func TestGetTree_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusNotFound, nil, "Tree not found")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetTree(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Tree not found")
}

func TestGetTree_ForwardsTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-123", r.Header.Get(traceIDHeader))
		writeEnvelope(t, w, http.StatusOK, oak(), "")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := utils.WithTraceID(context.Background(), "trace-123")
	_, err := a.GetTree(ctx, 1)

	require.NoError(t, err)
}

// ── UpdateTree ──────────────────────────────────────────────────────────────

func TestUpdateTree_SendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/trees/3", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"qr_code":"data:image/png;base64,AA"}`, string(body))

		tree := oak()
		tree.ID = 3
		qr := "data:image/png;base64,AA"
		tree.QRCode = &qr
		writeEnvelope(t, w, http.StatusOK, tree, "")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	qr := "data:image/png;base64,AA"
	got, err := a.UpdateTree(context.Background(), 3, models.TreeUpdate{QRCode: &qr})

	require.NoError(t, err)
	require.NotNil(t, got.QRCode)
	assert.Equal(t, qr, *got.QRCode)
}

func TestUpdateTree_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusNotFound, nil, "Tree not found")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	desc := "tall"
	_, err := a.UpdateTree(context.Background(), 3, models.TreeUpdate{Description: &desc})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTree_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusBadRequest, nil, "invalid data provided")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	desc := "tall"
	_, err := a.UpdateTree(context.Background(), 3, models.TreeUpdate{Description: &desc})

	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── FindTreeByNames ─────────────────────────────────────────────────────────

func TestFindTreeByNames_SendsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/trees/lookup", r.URL.Path)
		assert.Equal(t, "Oak & Co", r.URL.Query().Get("common_name"))
		assert.Equal(t, "Quercus %robur", r.URL.Query().Get("scientific_name"))

		tree := oak()
		tree.ID = 2
		writeEnvelope(t, w, http.StatusOK, tree, "")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FindTreeByNames(context.Background(), "Oak & Co", "Quercus %robur")

	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
}

// ── ListTrees ───────────────────────────────────────────────────────────────

func TestListTrees_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first, second := oak(), oak()
		first.ID, second.ID = 2, 1
		writeEnvelope(t, w, http.StatusOK, []models.Tree{first, second}, "")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListTrees(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}

// ── Ping ────────────────────────────────────────────────────────────────────

func TestPing(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		require.NoError(t, newTestAdapter(t, srv.URL).Ping(context.Background()))
	})

	t.Run("service unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		assert.ErrorIs(t, newTestAdapter(t, srv.URL).Ping(context.Background()), ErrUnavailable)
	})

	t.Run("unexpected status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
		defer srv.Close()

		assert.ErrorIs(t, newTestAdapter(t, srv.URL).Ping(context.Background()), ErrUnexpectedStatus)
	})
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}
