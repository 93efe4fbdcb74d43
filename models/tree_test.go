package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestTree_ApplyDefaults(t *testing.T) {
	tr := Tree{CommonName: "  Oak ", ScientificName: "Quercus robur\t", Age: -3}
	tr.ApplyDefaults()

	assert.Equal(t, "Oak", tr.CommonName)
	assert.Equal(t, "Quercus robur", tr.ScientificName)
	assert.Equal(t, HealthStatusHealthy, tr.HealthStatus)
	assert.Equal(t, []string{}, tr.Benefits)
	assert.Equal(t, []string{}, tr.Images)
	assert.Equal(t, 0, tr.Age)
}

func TestTree_ApplyDefaults_KeepsStatus(t *testing.T) {
	tr := Tree{HealthStatus: "Withering"}
	tr.ApplyDefaults()
	assert.Equal(t, "Withering", tr.HealthStatus)
}

func TestTree_Apply(t *testing.T) {
	tr := Tree{ID: 4, CommonName: "Oak", ScientificName: "Quercus robur", Benefits: []string{"shade"}}

	tr.Apply(TreeUpdate{
		QRCode:   ptr("data:image/png;base64,AAA"),
		Benefits: ptr([]string{"shade", "oxygen"}),
	})

	assert.Equal(t, int64(4), tr.ID)
	assert.Equal(t, "Oak", tr.CommonName)
	assert.Equal(t, []string{"shade", "oxygen"}, tr.Benefits)
	if assert.NotNil(t, tr.QRCode) {
		assert.Equal(t, "data:image/png;base64,AAA", *tr.QRCode)
	}
}

func TestTreeUpdate_IsEmpty(t *testing.T) {
	assert.True(t, TreeUpdate{}.IsEmpty())
	assert.False(t, TreeUpdate{PlantedBy: ptr("")}.IsEmpty())
}

func TestFullUpdate_RoundTrip(t *testing.T) {
	src := Tree{
		ID:             9,
		CommonName:     "Birch",
		ScientificName: "Betula pendula",
		Description:    "by the pond",
		Benefits:       []string{"bark"},
		Images:         []string{"img1", "img2"},
		Age:            3,
		PlantedDate:    "2021-05-01",
		HealthStatus:   HealthStatusSick,
		PlantedBy:      "Ann",
		QRCode:         ptr("qr"),
	}

	var dst Tree
	dst.Apply(FullUpdate(src))
	dst.ID = src.ID

	assert.Equal(t, src, dst)

	// the update must not alias the source slices
	src.Images[0] = "changed"
	assert.Equal(t, "img1", dst.Images[0])
}

func TestTreeURL(t *testing.T) {
	assert.Equal(t, "https://trees.example/tree/12", TreeURL("https://trees.example/", 12))
	assert.Equal(t, "http://localhost:3000/tree/1", TreeURL("http://localhost:3000", 1))
}
