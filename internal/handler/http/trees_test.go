package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-tree-keeper/internal/app"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/mock"
	"github.com/MKhiriev/go-tree-keeper/internal/service"
	"github.com/MKhiriev/go-tree-keeper/internal/store"
	"github.com/MKhiriev/go-tree-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	router  http.Handler
	trees   *mock.MockTreeService
	appInfo *mock.MockAppInfoService
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	trees := mock.NewMockTreeService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{TreeService: trees, AppInfoService: appInfo}, logger.Nop())
	return testEnv{router: h.Init(), trees: trees, appInfo: appInfo}
}

func (e testEnv) do(t *testing.T, method, target string, body any) (*httptest.ResponseRecorder, models.RawResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		require.NoError(t, json.NewEncoder(buf).Encode(body))
		reader = buf
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var envelope models.RawResponse
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func oak(id int64) models.Tree {
	return models.Tree{
		ID:             id,
		CommonName:     "Oak",
		ScientificName: "Quercus robur",
		HealthStatus:   models.HealthStatusHealthy,
		Benefits:       []string{},
		Images:         []string{},
	}
}

func TestCreateTree(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{
			name:       "duplicate names",
			serviceErr: service.ErrDuplicateTree,
			wantStatus: http.StatusConflict,
			wantError:  app.MsgDuplicateTree,
		},
		{
			name:       "validation failure",
			serviceErr: fmt.Errorf("%w: common name is empty", service.ErrInvalidTree),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid tree: common name is empty",
		},
		{
			name:       "database failure",
			serviceErr: fmt.Errorf("%w: boom", store.ErrExecutingStatement),
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			input := oak(0)

			if tt.serviceErr != nil {
				env.trees.EXPECT().Create(gomock.Any(), input).Return(models.Tree{}, tt.serviceErr)
			} else {
				env.trees.EXPECT().Create(gomock.Any(), input).Return(oak(7), nil)
			}

			rec, resp := env.do(t, http.MethodPost, "/api/trees", input)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.serviceErr == nil, resp.Success)
			assert.Equal(t, tt.wantError, resp.Error)
			if tt.serviceErr == nil {
				var created models.Tree
				require.NoError(t, json.Unmarshal(resp.Data, &created))
				assert.Equal(t, int64(7), created.ID)
			}
		})
	}
}

func TestCreateTree_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/trees", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidDataProvided)
}

func TestGetTree(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t)
		env.trees.EXPECT().Get(gomock.Any(), int64(3)).Return(oak(3), nil)

		rec, resp := env.do(t, http.MethodGet, "/api/trees/3", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.trees.EXPECT().Get(gomock.Any(), int64(3)).Return(models.Tree{}, service.ErrTreeNotFound)

		rec, resp := env.do(t, http.MethodGet, "/api/trees/3", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, app.MsgTreeNotFound, resp.Error)
	})

	for _, badID := range []string{"abc", "0", "-4"} {
		t.Run("bad id "+badID, func(t *testing.T) {
			env := newTestEnv(t)

			rec, resp := env.do(t, http.MethodGet, "/api/trees/"+badID, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, app.MsgInvalidTreeID, resp.Error)
		})
	}
}

func TestLookupTree(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t)
		env.trees.EXPECT().FindByNames(gomock.Any(), "oak", "quercus robur").Return(oak(5), nil)

		rec, resp := env.do(t, http.MethodGet, "/api/trees/lookup?common_name=oak&scientific_name=quercus+robur", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var found models.Tree
		require.NoError(t, json.Unmarshal(resp.Data, &found))
		assert.Equal(t, int64(5), found.ID)
	})

	t.Run("missing name", func(t *testing.T) {
		env := newTestEnv(t)

		rec, resp := env.do(t, http.MethodGet, "/api/trees/lookup?common_name=oak", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgNamesRequired, resp.Error)
	})

	t.Run("no match", func(t *testing.T) {
		env := newTestEnv(t)
		env.trees.EXPECT().FindByNames(gomock.Any(), "elm", "ulmus").Return(models.Tree{}, store.ErrTreeNotFound)

		rec, _ := env.do(t, http.MethodGet, "/api/trees/lookup?common_name=elm&scientific_name=ulmus", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateTree(t *testing.T) {
	qr := "data:image/png;base64,AAA"
	update := models.TreeUpdate{QRCode: &qr}

	t.Run("updated", func(t *testing.T) {
		env := newTestEnv(t)
		updated := oak(4)
		updated.QRCode = &qr
		env.trees.EXPECT().Update(gomock.Any(), int64(4), update).Return(updated, nil)

		rec, resp := env.do(t, http.MethodPut, "/api/trees/4", update)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got models.Tree
		require.NoError(t, json.Unmarshal(resp.Data, &got))
		require.NotNil(t, got.QRCode)
		assert.Equal(t, qr, *got.QRCode)
	})

	t.Run("unknown id", func(t *testing.T) {
		env := newTestEnv(t)
		env.trees.EXPECT().Update(gomock.Any(), int64(4), update).Return(models.Tree{}, service.ErrTreeNotFound)

		rec, _ := env.do(t, http.MethodPut, "/api/trees/4", update)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteTree(t *testing.T) {
	env := newTestEnv(t)
	env.trees.EXPECT().Delete(gomock.Any(), int64(9)).Return(oak(9), nil)

	rec, resp := env.do(t, http.MethodDelete, "/api/trees/9", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestListTrees(t *testing.T) {
	t.Run("empty list is an array", func(t *testing.T) {
		env := newTestEnv(t)
		env.trees.EXPECT().List(gomock.Any()).Return(nil, nil)

		rec, resp := env.do(t, http.MethodGet, "/api/trees", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(resp.Data))
	})

	t.Run("storage failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.trees.EXPECT().List(gomock.Any()).Return(nil, store.ErrScanningRows)

		rec, resp := env.do(t, http.MethodGet, "/api/trees", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, app.MsgInternalServerError, resp.Error)
	})

	t.Run("temporary storage failure", func(t *testing.T) {
		env := newTestEnv(t)
		err := fmt.Errorf("%w: %w", store.ErrTemporary, store.ErrExecutingQuery)
		env.trees.EXPECT().List(gomock.Any()).Return(nil, err)

		rec, _ := env.do(t, http.MethodGet, "/api/trees", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHealthAndVersion(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rec, resp := env.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	rec, _ = env.do(t, http.MethodGet, "/api/version", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.0", rec.Body.String())
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodPatch, "/api/trees/1", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
}

func TestInit_GzipRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	env.trees.EXPECT().Create(gomock.Any(), oak(0)).Return(oak(1), nil)

	var body bytes.Buffer
	zw := gzip.NewWriter(&body)
	require.NoError(t, json.NewEncoder(zw).Encode(oak(0)))
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/trees", &body)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	var resp models.RawResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.True(t, resp.Success)
}

func TestInit_TraceIDHeader(t *testing.T) {
	env := newTestEnv(t)
	env.trees.EXPECT().List(gomock.Any()).Return([]models.Tree{}, nil).Times(2)

	rec, _ := env.do(t, http.MethodGet, "/api/trees", nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/trees", nil)
	req.Header.Set(traceIDHeader, "agent-trace-1")
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, "agent-trace-1", rec.Header().Get(traceIDHeader))
}
