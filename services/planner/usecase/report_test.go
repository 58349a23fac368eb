package usecase

import (
	"testing"
	"time"

	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport_SamplesLongPaths(t *testing.T) {
	path := make([]models.Coordinate, 250)
	for i := range path {
		path[i] = models.Coordinate{Lat: float64(i)}
	}
	req := models.RouteRequest{ID: "r", DepartureTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	report := BuildReport(req, &models.RouteResult{
		Success:  true,
		Shortest: models.PathResult{TotalTimeHours: 1.5, TotalFuelKg: 2000, FullPath: path},
		Optimal:  models.PathResult{TotalFuelKg: 1500},
	}, 8)

	require.Len(t, report.SampledPath, 100)
	assert.Equal(t, 2.0, report.SampledPath[1].Lat)
	assert.Equal(t, 247.0, report.SampledPath[99].Lat)
	assert.Equal(t, 2.0, report.FuelTons)
	assert.Equal(t, 1.5, report.OptimalFuelTons)
	assert.InDelta(t, 0.5, report.FuelSavingTons, 1e-9)
	assert.InDelta(t, 25.0, report.FuelSavingPercent, 1e-9)
	assert.Equal(t, req.DepartureTime.Add(90*time.Minute), report.ArrivalTime)
	assert.Equal(t, 8.0, report.SpeedMps)
}

func TestBuildReport_ZeroFuel(t *testing.T) {
	report := BuildReport(models.RouteRequest{}, &models.RouteResult{Success: true}, 8)

	assert.Zero(t, report.FuelSavingPercent)
	assert.Empty(t, report.SampledPath)
}

func TestPathSnapshot(t *testing.T) {
	requested := models.Snapshot{
		{Role: models.RoleStart, Label: "Busan"},
		{Role: models.RoleEnd, Label: "Singapore"},
	}

	out := PathSnapshot([]models.Coordinate{{Lat: 1}, {Lat: 2}, {Lat: 3}}, requested)

	require.Len(t, out, 3)
	assert.Equal(t, models.Waypoint{Role: models.RoleStart, Label: "Busan", Lat: 1}, out[0])
	assert.Equal(t, models.Waypoint{Role: models.RoleVia, Lat: 2}, out[1])
	assert.Equal(t, models.Waypoint{Role: models.RoleEnd, Label: "Singapore", Lat: 3}, out[2])

	single := PathSnapshot([]models.Coordinate{{Lat: 1}}, requested)
	assert.Equal(t, models.RoleStart, single[0].Role)

	assert.Empty(t, PathSnapshot(nil, requested))
}
