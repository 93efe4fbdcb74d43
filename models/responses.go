package models

import "encoding/json"

// Response is the JSON envelope shared by every endpoint of the tree API.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RawResponse is the decoding counterpart of [Response]; Data is kept raw
// so the caller decides what to unmarshal it into.
type RawResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// CreatedTree is returned by the device agent after a successful create.
// URL is the address a QR artifact for the tree should encode.
type CreatedTree struct {
	Tree Tree   `json:"tree"`
	URL  string `json:"url"`
}

// SweepReport summarizes one reconciliation pass over the local cache.
type SweepReport struct {
	Attempted int     `json:"attempted"`
	Failed    int     `json:"failed"`
	FailedIDs []int64 `json:"failed_ids,omitempty"`
}

// ConnectivityState is the body of the agent connectivity endpoint.
type ConnectivityState struct {
	Online bool `json:"online"`
}
