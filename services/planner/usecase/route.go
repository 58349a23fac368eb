package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Taeppir/Link/internal/pkg/constants"
	ctxpkg "github.com/Taeppir/Link/internal/pkg/context"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
)

const projectTimeout = 10 * time.Second

// FindRoute validates the list, runs the routing engine off the control loop
// and waits until its result has been applied to the map view.
func (uc *PlannerUC) FindRoute(ctx context.Context) (*models.RouteOutcome, error) {
	resultc := make(chan *models.RouteOutcome, 1)

	err := uc.loop.Do(ctx, func() error {
		if uc.routing {
			return models.ErrRouteInFlight
		}
		if uc.departure == nil {
			// endpoint errors take precedence over a missing departure
			if _, err := uc.list.ToRouteRequest(time.Time{}); err != nil {
				return err
			}
			return models.NewMissingDeparture()
		}
		req, err := uc.list.ToRouteRequest(*uc.departure)
		if err != nil {
			return err
		}

		uc.routing = true
		snapshot := uc.list.Snapshot()
		speed := uc.speed()
		logger.Info("Route search started",
			logger.RequestID(req.ID),
			logger.String("http_request_id", ctxpkg.GetRequestID(ctx)),
			logger.Int("waypoints", len(req.Coordinates)),
			logger.Float64("speed_mps", speed))

		go uc.calculate(req, snapshot, speed, resultc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	select {
	case outcome := <-resultc:
		return outcome, outcome.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// calculate runs on its own goroutine. Only the engine call and report
// projection happen here; list and bridge are touched back on the loop.
func (uc *PlannerUC) calculate(req models.RouteRequest, snapshot models.Snapshot, speed float64, resultc chan<- *models.RouteOutcome) {
	started := time.Now()
	outcome := &models.RouteOutcome{Request: req}

	result, err := uc.engine.CalculateRoute(context.Background(), req.Coordinates, speed)
	switch {
	case err != nil:
		outcome.Err = &models.EngineError{Message: err.Error()}
	case result == nil:
		outcome.Err = &models.EngineError{Message: "empty engine response"}
	case !result.Success:
		outcome.Result = result
		outcome.Err = &models.EngineError{Message: result.ErrorMessage}
	default:
		outcome.Result = result
		report := BuildReport(req, result, speed)
		outcome.Report = &report
		uc.project(report)
	}

	logger.Info("Route search finished",
		logger.RequestID(req.ID),
		logger.Duration("elapsed", time.Since(started)),
		logger.Bool("success", outcome.Err == nil))

	if err := uc.loop.Post(func() {
		uc.applyOutcome(outcome, snapshot)
		resultc <- outcome
	}); err != nil {
		outcome.Err = err
		resultc <- outcome
	}
}

// project forwards a report; projector failures never fail the search
func (uc *PlannerUC) project(report models.RouteReport) {
	if uc.projector == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), projectTimeout)
	defer cancel()

	if err := uc.projector.Project(ctx, report); err != nil {
		logger.Warn("Failed to project route report",
			logger.RequestID(report.RequestID),
			logger.Err(err))
	}
}

// applyOutcome runs on the loop
func (uc *PlannerUC) applyOutcome(outcome *models.RouteOutcome, snapshot models.Snapshot) {
	uc.routing = false

	if outcome.Err != nil {
		msg := outcome.Err.Error()
		if engErr, ok := outcome.Err.(*models.EngineError); ok {
			msg = engErr.Message
		}
		logger.Warn("Route search failed",
			logger.RequestID(outcome.Request.ID),
			logger.Err(outcome.Err))
		uc.send(models.SetInfo(fmt.Sprintf(constants.InfoRouteFailed, msg)))
		uc.send(models.SetWaypoints(uc.departText(), uc.list.Snapshot()))
		return
	}

	path := outcome.Result.Shortest.FullPath
	if len(path) == 0 {
		uc.send(models.SetWaypoints(uc.departText(), uc.list.Snapshot()))
	} else {
		uc.send(models.SetWaypoints(uc.departText(), PathSnapshot(path, snapshot)))
	}
	uc.send(models.SetInfo(constants.InfoRouteShown))
}

// PathSnapshot turns a routed path into waypoints: the first point is START,
// the last END and everything in between VIA. Endpoint labels are taken from
// the list the route was requested for.
func PathSnapshot(path []models.Coordinate, requested models.Snapshot) models.Snapshot {
	out := make(models.Snapshot, len(path))
	for i, c := range path {
		out[i] = models.Waypoint{Role: models.RoleVia, Lat: c.Lat, Lon: c.Lon}
	}
	if len(out) == 0 {
		return out
	}

	out[0].Role = models.RoleStart
	if len(requested) > 0 && requested[0].Role == models.RoleStart {
		out[0].Label = requested[0].Label
	}
	if len(out) > 1 {
		last := len(out) - 1
		out[last].Role = models.RoleEnd
		if n := len(requested); n > 0 && requested[n-1].Role == models.RoleEnd {
			out[last].Label = requested[n-1].Label
		}
	}
	return out
}
