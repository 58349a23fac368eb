package planner

import (
	"context"

	"github.com/Taeppir/Link/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/Taeppir/Link/services/planner RoutingEngine,ReportProjector

// RoutingEngine is the external route and fuel optimization engine
type RoutingEngine interface {
	Initialize(ctx context.Context, bathymetryPath, coastlinePath string) (bool, error)
	LoadWeather(ctx context.Context, dir string) error
	CalculateRoute(ctx context.Context, coords []models.Coordinate, speedMps float64) (*models.RouteResult, error)
}

// ReportProjector receives the metrics of every successful route search
type ReportProjector interface {
	Project(ctx context.Context, report models.RouteReport) error
}
