package usecase

import (
	"time"

	"github.com/Taeppir/Link/internal/pkg/constants"
	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/Taeppir/Link/internal/utils"
)

// BuildReport derives the projected report from a successful engine result.
// Fuel is converted from kilograms to tons.
func BuildReport(req models.RouteRequest, result *models.RouteResult, speedMps float64) models.RouteReport {
	shortest := result.Shortest
	optimal := result.Optimal

	fuelTons := shortest.TotalFuelKg / 1000
	optimalFuelTons := optimal.TotalFuelKg / 1000

	report := models.RouteReport{
		RequestID:         req.ID,
		DepartureTime:     req.DepartureTime,
		ArrivalTime:       req.DepartureTime.Add(time.Duration(shortest.TotalTimeHours * float64(time.Hour))),
		SpeedMps:          speedMps,
		DistanceKm:        shortest.TotalDistanceKm,
		TimeHours:         shortest.TotalTimeHours,
		FuelTons:          fuelTons,
		SampledPath:       utils.SamplePath(shortest.FullPath, constants.MaxReportPathPoints),
		OptimalDistanceKm: optimal.TotalDistanceKm,
		OptimalTimeHours:  optimal.TotalTimeHours,
		OptimalFuelTons:   optimalFuelTons,
		FuelSavingTons:    fuelTons - optimalFuelTons,
	}
	if fuelTons > 0 {
		report.FuelSavingPercent = report.FuelSavingTons / fuelTons * 100
	}
	return report
}
