package utils

import "github.com/Taeppir/Link/internal/pkg/models"

// SamplePath returns at most max points of path. Longer paths are subsampled
// with a uniform index step of n/max, taking source index floor(i*step).
func SamplePath(path []models.Coordinate, max int) []models.Coordinate {
	n := len(path)
	if max <= 0 {
		return nil
	}
	if n <= max {
		out := make([]models.Coordinate, n)
		copy(out, path)
		return out
	}

	step := float64(n) / float64(max)
	out := make([]models.Coordinate, max)
	for i := 0; i < max; i++ {
		out[i] = path[int(float64(i)*step)]
	}
	return out
}
