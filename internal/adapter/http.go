package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-tree-keeper/internal/config"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/utils"
	"github.com/MKhiriev/go-tree-keeper/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateTree implements [ServerAdapter]. It POSTs the tree to
// POST /api/trees and decodes the stored record from the response envelope.
func (h *httpServerAdapter) CreateTree(ctx context.Context, tree models.Tree) (models.Tree, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(tree).
		Post("/api/trees")
	if err != nil {
		return models.Tree{}, fmt.Errorf("%w: create tree request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Tree{}, err
	}

	var created models.Tree
	if err = decodeData(resp, &created); err != nil {
		return models.Tree{}, err
	}
	return created, nil
}

// GetTree implements [ServerAdapter] via GET /api/trees/{id}.
func (h *httpServerAdapter) GetTree(ctx context.Context, id int64) (models.Tree, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/api/trees/{id}")
	if err != nil {
		return models.Tree{}, fmt.Errorf("%w: get tree request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Tree{}, err
	}

	var tree models.Tree
	if err = decodeData(resp, &tree); err != nil {
		return models.Tree{}, err
	}
	return tree, nil
}

// UpdateTree implements [ServerAdapter] via PUT /api/trees/{id}. Only the
// non-nil fields of update are serialised.
func (h *httpServerAdapter) UpdateTree(ctx context.Context, id int64, update models.TreeUpdate) (models.Tree, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(update).
		Put("/api/trees/{id}")
	if err != nil {
		return models.Tree{}, fmt.Errorf("%w: update tree request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Tree{}, err
	}

	var tree models.Tree
	if err = decodeData(resp, &tree); err != nil {
		return models.Tree{}, err
	}
	return tree, nil
}

// FindTreeByNames implements [ServerAdapter] via
// GET /api/trees/lookup?common_name=...&scientific_name=....
func (h *httpServerAdapter) FindTreeByNames(ctx context.Context, commonName, scientificName string) (models.Tree, error) {
	resp, err := h.request(ctx).
		SetQueryParam("common_name", commonName).
		SetQueryParam("scientific_name", scientificName).
		Get("/api/trees/lookup")
	if err != nil {
		return models.Tree{}, fmt.Errorf("%w: lookup tree request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Tree{}, err
	}

	var tree models.Tree
	if err = decodeData(resp, &tree); err != nil {
		return models.Tree{}, err
	}
	return tree, nil
}

// ListTrees implements [ServerAdapter] via GET /api/trees.
func (h *httpServerAdapter) ListTrees(ctx context.Context) ([]models.Tree, error) {
	resp, err := h.request(ctx).Get("/api/trees")
	if err != nil {
		return nil, fmt.Errorf("%w: list trees request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	trees := []models.Tree{}
	if err = decodeData(resp, &trees); err != nil {
		return nil, err
	}
	return trees, nil
}

// Ping implements [ServerAdapter] via GET /api/health.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("%w: health request: %w", ErrUnavailable, err)
	}
	return mapHTTPError(resp)
}

// request starts a request bound to ctx, forwarding the trace id if present.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

// decodeData unmarshals the data field of a success envelope into dst.
func decodeData(resp *resty.Response, dst any) error {
	var envelope models.RawResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("%w: empty data", ErrDecodingResponse)
	}
	if err := json.Unmarshal(envelope.Data, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}
