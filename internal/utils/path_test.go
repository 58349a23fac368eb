package utils

import (
	"math"
	"testing"

	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexedPath(n int) []models.Coordinate {
	path := make([]models.Coordinate, n)
	for i := range path {
		path[i] = models.Coordinate{Lat: float64(i), Lon: float64(-i)}
	}
	return path
}

func TestSamplePath_ShortPathForwardedAsIs(t *testing.T) {
	for _, n := range []int{0, 1, 99, 100} {
		path := indexedPath(n)
		got := SamplePath(path, 100)
		assert.Equal(t, path, got, "n=%d", n)
	}
}

func TestSamplePath_250Points(t *testing.T) {
	got := SamplePath(indexedPath(250), 100)

	require.Len(t, got, 100)
	for i, c := range got {
		want := math.Floor(float64(i) * 2.5)
		assert.Equal(t, want, c.Lat, "sample %d", i)
	}
}

func TestSamplePath_101Points(t *testing.T) {
	got := SamplePath(indexedPath(101), 100)

	require.Len(t, got, 100)
	assert.Equal(t, 0.0, got[0].Lat)
	assert.Equal(t, 99.0, got[99].Lat)
}

func TestSamplePath_ReturnsCopy(t *testing.T) {
	path := indexedPath(3)
	got := SamplePath(path, 100)
	got[0].Lat = 42

	assert.Equal(t, 0.0, path[0].Lat)
}
