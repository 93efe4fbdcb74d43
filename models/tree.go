// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
)

// Health statuses offered by the tree form. Other values are stored as-is.
const (
	HealthStatusHealthy      = "Healthy"
	HealthStatusExcellent    = "Excellent"
	HealthStatusRequiresCare = "Requires Care"
	HealthStatusSick         = "Sick"
)

// PlantedDateLayout is the calendar date format of [Tree.PlantedDate].
const PlantedDateLayout = "2006-01-02"

// Tree is a single planted tree record.
//
// The same structure is stored by the remote authoritative store and by the
// per-device cache. ID is assigned by the remote store only; a record with
// zero ID has never been persisted remotely.
type Tree struct {
	// ID is the positive integer identifier allocated by the remote store.
	ID int64 `json:"tree_id"`

	// CommonName is the everyday name, e.g. "Oak". Together with
	// ScientificName it forms the duplicate-detection key.
	CommonName string `json:"common_name"`

	// ScientificName is the botanical name, e.g. "Quercus robur".
	ScientificName string `json:"scientific_name"`

	Description string `json:"description"`

	// Benefits keeps the order entered by the user.
	Benefits []string `json:"benefits"`

	// Images are data-URI encoded pictures in upload order.
	Images []string `json:"images"`

	// Age is the number of whole years elapsed since PlantedDate.
	Age int `json:"age"`

	// PlantedDate is a YYYY-MM-DD calendar date, may be empty.
	PlantedDate string `json:"planted_date"`

	HealthStatus string `json:"health_status"`
	PlantedBy    string `json:"planted_by"`

	// QRCode is the cached scan artifact pointing to the tree page.
	QRCode *string `json:"qr_code,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ApplyDefaults fills the optional fields with their default values and
// trims surrounding whitespace from both names.
func (t *Tree) ApplyDefaults() {
	t.CommonName = strings.TrimSpace(t.CommonName)
	t.ScientificName = strings.TrimSpace(t.ScientificName)
	if t.HealthStatus == "" {
		t.HealthStatus = HealthStatusHealthy
	}
	if t.Benefits == nil {
		t.Benefits = []string{}
	}
	if t.Images == nil {
		t.Images = []string{}
	}
	if t.Age < 0 {
		t.Age = 0
	}
}

// Apply copies every non-nil field of u into t.
func (t *Tree) Apply(u TreeUpdate) {
	if u.CommonName != nil {
		t.CommonName = *u.CommonName
	}
	if u.ScientificName != nil {
		t.ScientificName = *u.ScientificName
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Benefits != nil {
		t.Benefits = append([]string{}, (*u.Benefits)...)
	}
	if u.Images != nil {
		t.Images = append([]string{}, (*u.Images)...)
	}
	if u.Age != nil {
		t.Age = *u.Age
	}
	if u.PlantedDate != nil {
		t.PlantedDate = *u.PlantedDate
	}
	if u.HealthStatus != nil {
		t.HealthStatus = *u.HealthStatus
	}
	if u.PlantedBy != nil {
		t.PlantedBy = *u.PlantedBy
	}
	if u.QRCode != nil {
		qr := *u.QRCode
		t.QRCode = &qr
	}
}

// TreeURL returns the address of the tree detail page that QR artifacts
// encode.
func TreeURL(baseURL string, id int64) string {
	return fmt.Sprintf("%s/tree/%d", strings.TrimRight(baseURL, "/"), id)
}
