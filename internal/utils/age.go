// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-tree-keeper/models"
)

// AgeYears returns the number of whole years elapsed between planted and now.
//
// A year counts only once its anniversary has been reached: a tree planted on
// 2020-06-15 is 1 on 2022-06-14 and 2 on 2022-06-15. The result is clamped
// to zero for dates in the future. Dates are compared on the calendar only,
// in the location of now.
func AgeYears(planted, now time.Time) int {
	y1, m1, d1 := planted.Date()
	y2, m2, d2 := now.Date()

	age := y2 - y1
	if m2 < m1 || (m2 == m1 && d2 < d1) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// ParsePlantedDate parses a YYYY-MM-DD date in loc.
func ParsePlantedDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(models.PlantedDateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid planted date %q: %w", value, err)
	}
	return t, nil
}

// RecomputeAge sets tree.Age from its planted date as of now.
//
// An empty planted date keeps the supplied age, clamped to zero.
// An unparsable planted date is returned as an error and the tree is left
// untouched.
func RecomputeAge(tree *models.Tree, now time.Time) error {
	if tree.PlantedDate == "" {
		if tree.Age < 0 {
			tree.Age = 0
		}
		return nil
	}

	planted, err := ParsePlantedDate(tree.PlantedDate, now.Location())
	if err != nil {
		return err
	}
	tree.Age = AgeYears(planted, now)
	return nil
}
