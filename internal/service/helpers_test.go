package service

import (
	"time"

	"github.com/MKhiriev/go-tree-keeper/models"
)

// fixedNow is the clock used by service tests: 2025-06-15 12:00 UTC.
var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func oakInput() models.Tree {
	return models.Tree{
		CommonName:     "Oak",
		ScientificName: "Quercus robur",
		Description:    "Old oak near the gate",
		Benefits:       []string{"shade", "habitat"},
		Images:         []string{"data:image/png;base64,AA"},
		PlantedDate:    "2023-06-14",
		PlantedBy:      "Eco Club",
	}
}

// stored returns tree as the remote store would return it under id.
func stored(tree models.Tree, id int64) models.Tree {
	tree.ID = id
	tree.ApplyDefaults()
	ts := fixedNow
	tree.CreatedAt = &ts
	tree.UpdatedAt = &ts
	return tree
}
