// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TreeUpdate represents a partial update of a [Tree].
// Only non-nil fields are applied.
type TreeUpdate struct {
	CommonName     *string   `json:"common_name,omitempty"`
	ScientificName *string   `json:"scientific_name,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Benefits       *[]string `json:"benefits,omitempty"`
	Images         *[]string `json:"images,omitempty"`
	Age            *int      `json:"age,omitempty"`
	PlantedDate    *string   `json:"planted_date,omitempty"`
	HealthStatus   *string   `json:"health_status,omitempty"`
	PlantedBy      *string   `json:"planted_by,omitempty"`
	QRCode         *string   `json:"qr_code,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u TreeUpdate) IsEmpty() bool {
	return u.CommonName == nil &&
		u.ScientificName == nil &&
		u.Description == nil &&
		u.Benefits == nil &&
		u.Images == nil &&
		u.Age == nil &&
		u.PlantedDate == nil &&
		u.HealthStatus == nil &&
		u.PlantedBy == nil &&
		u.QRCode == nil
}

// FullUpdate builds an update that overwrites every field of the target
// with the values of t. Used when pushing a whole cached record.
func FullUpdate(t Tree) TreeUpdate {
	u := TreeUpdate{
		CommonName:     &t.CommonName,
		ScientificName: &t.ScientificName,
		Description:    &t.Description,
		Age:            &t.Age,
		PlantedDate:    &t.PlantedDate,
		HealthStatus:   &t.HealthStatus,
		PlantedBy:      &t.PlantedBy,
		QRCode:         t.QRCode,
	}
	benefits := append([]string{}, t.Benefits...)
	images := append([]string{}, t.Images...)
	u.Benefits = &benefits
	u.Images = &images
	return u
}
