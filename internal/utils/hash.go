package utils

import (
	"encoding/hex"
	"encoding/json"

	"github.com/MKhiriev/go-tree-keeper/models"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of the user-editable
// content of a tree. Identifier and timestamps are excluded, so a cached
// copy and its remote counterpart have equal fingerprints when their
// content matches.
func Fingerprint(tree models.Tree) string {
	tree.ID = 0
	tree.CreatedAt = nil
	tree.UpdatedAt = nil
	if tree.Benefits == nil {
		tree.Benefits = []string{}
	}
	if tree.Images == nil {
		tree.Images = []string{}
	}

	// marshaling a struct of strings, ints and slices cannot fail
	data, _ := json.Marshal(tree)
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
