package usecase

import (
	"context"
	"time"

	"github.com/Taeppir/Link/internal/pkg/constants"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/Taeppir/Link/services/planner"
	"github.com/Taeppir/Link/services/planner/bridge"
	"github.com/Taeppir/Link/services/planner/waypoints"
)

// PlannerUC implements the planner use case interface. It is the sync
// controller between the waypoint list, the map bridge and the routing engine.
type PlannerUC struct {
	cfg        *models.Config
	loop       *Loop
	engine     planner.RoutingEngine
	projector  planner.ReportProjector
	portRepo   planner.PortRepo
	reportRepo planner.ReportRepo

	// loop-owned state
	list      *waypoints.List
	bridge    *bridge.Bridge
	sessionID string
	overlays  map[string]bool
	departure *time.Time
	routing   bool
}

// NewPlannerUC creates a new planner use case. The loop must be running for
// any method to complete.
func NewPlannerUC(
	cfg *models.Config,
	loop *Loop,
	engine planner.RoutingEngine,
	projector planner.ReportProjector,
	portRepo planner.PortRepo,
	reportRepo planner.ReportRepo,
) *PlannerUC {
	uc := &PlannerUC{
		cfg:        cfg,
		loop:       loop,
		engine:     engine,
		projector:  projector,
		portRepo:   portRepo,
		reportRepo: reportRepo,
		list:       waypoints.New(),
		overlays:   make(map[string]bool, len(constants.Overlays)),
	}
	uc.list.Subscribe(uc.onListChanged)
	return uc
}

// InitEngine loads the engine's static data. Failures are logged; route
// searches will then report the engine's own error.
func (uc *PlannerUC) InitEngine(ctx context.Context) bool {
	ok, err := uc.engine.Initialize(ctx, uc.cfg.Engine.BathymetryPath, uc.cfg.Engine.CoastlinePath)
	if err != nil || !ok {
		logger.Error("Routing engine initialization failed",
			logger.String("bathymetry", uc.cfg.Engine.BathymetryPath),
			logger.String("coastline", uc.cfg.Engine.CoastlinePath),
			logger.Err(err))
		return false
	}

	if uc.cfg.Engine.WeatherDir != "" {
		if err := uc.engine.LoadWeather(ctx, uc.cfg.Engine.WeatherDir); err != nil {
			logger.Warn("Weather data not loaded",
				logger.String("dir", uc.cfg.Engine.WeatherDir),
				logger.Err(err))
		}
	}

	logger.Info("Routing engine initialized")
	return true
}

// speed returns the configured ship speed
func (uc *PlannerUC) speed() float64 {
	if uc.cfg.Engine.SpeedMps > 0 {
		return uc.cfg.Engine.SpeedMps
	}
	return constants.DefaultSpeedMps
}

// departText renders the departure for the map view, empty when unset
func (uc *PlannerUC) departText() string {
	if uc.departure == nil {
		return ""
	}
	return uc.departure.Format(models.DepartureLayout)
}

// send relays a command to the current view. With no view attached the
// command is dropped; a connecting view receives a fresh snapshot.
func (uc *PlannerUC) send(cmd models.BridgeCommand) {
	if uc.bridge == nil {
		return
	}
	uc.bridge.Send(cmd)
}

// onListChanged keeps the map in step with every list mutation
func (uc *PlannerUC) onListChanged(snapshot models.Snapshot) {
	uc.send(models.SetWaypoints(uc.departText(), snapshot))
	uc.send(models.SetInfo(constants.InfoWaypointsUpdated))
}
