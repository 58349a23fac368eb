package planner

import (
	"context"
	"time"

	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/Taeppir/Link/services/planner/bridge"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Taeppir/Link/services/planner PlannerUC

// PlannerUC defines the waypoint planning business logic.
// Every method is safe to call from any goroutine.
type PlannerUC interface {
	Snapshot(ctx context.Context) (models.Snapshot, error)
	AddWaypoint(ctx context.Context, input models.WaypointInput) (*models.InsertResult, error)
	DeleteWaypoint(ctx context.Context, index int) (models.Snapshot, error)
	ClearWaypoints(ctx context.Context) error
	SetDeparture(ctx context.Context, departure time.Time) error
	FindRoute(ctx context.Context) (*models.RouteOutcome, error)

	ToggleOverlay(ctx context.Context, name string, on bool) error
	UndoInteractive(ctx context.Context) error
	ClearInteractive(ctx context.Context) error

	SearchPorts(ctx context.Context, query string) ([]models.Port, error)
	LatestReport(ctx context.Context) (*models.RouteReport, error)

	ViewConnected(ctx context.Context, sessionID string, dispatcher bridge.Dispatcher) error
	ViewLoaded(ctx context.Context, sessionID string) error
	ViewDisconnected(ctx context.Context, sessionID string) error
	PointAdded(ctx context.Context, sessionID string, event models.BridgeEvent) error
}
