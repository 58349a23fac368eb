package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Taeppir/Link/internal/pkg/constants"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
)

// Snapshot returns the current waypoint sequence
func (uc *PlannerUC) Snapshot(ctx context.Context) (models.Snapshot, error) {
	var snapshot models.Snapshot
	err := uc.loop.Do(ctx, func() error {
		snapshot = uc.list.Snapshot()
		return nil
	})
	return snapshot, err
}

// AddWaypoint inserts a waypoint entered through the form
func (uc *PlannerUC) AddWaypoint(ctx context.Context, input models.WaypointInput) (*models.InsertResult, error) {
	var missing []string
	if input.Lat == nil {
		missing = append(missing, "latitude")
	}
	if input.Lon == nil {
		missing = append(missing, "longitude")
	}
	if len(missing) > 0 {
		return nil, models.NewInvalidCoordinate("is required", missing...)
	}

	role, _ := models.ParseRole(input.Type)

	var result *models.InsertResult
	err := uc.loop.Do(ctx, func() error {
		res, err := uc.insert(role, input.Port, *input.Lat, *input.Lon)
		result = res
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// insert runs on the loop and is shared by form entry and view events
func (uc *PlannerUC) insert(role models.Role, label string, lat, lon float64) (*models.InsertResult, error) {
	placement, err := uc.list.Insert(role, label, lat, lon)
	if err != nil {
		return nil, err
	}
	uc.verify()

	if placement.Advisory != "" {
		uc.send(models.SetInfo(placement.Advisory))
	}

	return &models.InsertResult{
		Index:    placement.Index,
		Advisory: placement.Advisory,
		Snapshot: uc.list.Snapshot(),
	}, nil
}

// verify logs a broken ordering invariant. It never repairs the list.
func (uc *PlannerUC) verify() {
	if err := uc.list.Verify(); err != nil {
		logger.Error("Waypoint ordering violated",
			logger.Err(err),
			logger.Array("waypoints", uc.list.Snapshot()))
	}
}

// DeleteWaypoint removes the waypoint at index
func (uc *PlannerUC) DeleteWaypoint(ctx context.Context, index int) (models.Snapshot, error) {
	var snapshot models.Snapshot
	err := uc.loop.Do(ctx, func() error {
		if err := uc.list.DeleteAt(index); err != nil {
			return err
		}
		snapshot = uc.list.Snapshot()
		return nil
	})
	return snapshot, err
}

// ClearWaypoints empties the list
func (uc *PlannerUC) ClearWaypoints(ctx context.Context) error {
	return uc.loop.Do(ctx, func() error {
		uc.list.Clear()
		return nil
	})
}

// SetDeparture sets the departure time used by the next route search
func (uc *PlannerUC) SetDeparture(ctx context.Context, departure time.Time) error {
	if departure.IsZero() {
		return models.NewMissingDeparture()
	}
	return uc.loop.Do(ctx, func() error {
		d := departure
		uc.departure = &d
		uc.send(models.SetWaypoints(uc.departText(), uc.list.Snapshot()))
		return nil
	})
}

// ToggleOverlay switches a map layer on or off
func (uc *PlannerUC) ToggleOverlay(ctx context.Context, name string, on bool) error {
	known := false
	for _, overlay := range constants.Overlays {
		if overlay == name {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %s", models.ErrUnknownOverlay, name)
	}

	return uc.loop.Do(ctx, func() error {
		uc.overlays[name] = on
		uc.send(models.ToggleOverlay(name, on))
		return nil
	})
}

// UndoInteractive removes the last point drawn inside the view
func (uc *PlannerUC) UndoInteractive(ctx context.Context) error {
	return uc.viewOnly(ctx, models.UndoInteractive())
}

// ClearInteractive removes every point drawn inside the view
func (uc *PlannerUC) ClearInteractive(ctx context.Context) error {
	return uc.viewOnly(ctx, models.ClearInteractive())
}

func (uc *PlannerUC) viewOnly(ctx context.Context, cmd models.BridgeCommand) error {
	return uc.loop.Do(ctx, func() error {
		if uc.bridge == nil {
			return models.ErrViewNotConnected
		}
		uc.bridge.Send(cmd)
		return nil
	})
}

// SearchPorts filters the static port list
func (uc *PlannerUC) SearchPorts(ctx context.Context, query string) ([]models.Port, error) {
	ports, err := uc.portRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search ports: %w", err)
	}
	return ports, nil
}

// LatestReport returns the report of the last successful route search
func (uc *PlannerUC) LatestReport(ctx context.Context) (*models.RouteReport, error) {
	if uc.reportRepo == nil {
		return nil, models.ErrNoReport
	}
	report, ok := uc.reportRepo.Latest(ctx)
	if !ok {
		return nil, models.ErrNoReport
	}
	return report, nil
}
