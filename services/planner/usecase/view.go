package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Taeppir/Link/internal/pkg/constants"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/Taeppir/Link/services/planner/bridge"
)

// ViewConnected attaches a freshly connected map view. Any previous view is
// detached and a new bridge starts in Loading with the current snapshot queued.
func (uc *PlannerUC) ViewConnected(ctx context.Context, sessionID string, dispatcher bridge.Dispatcher) error {
	return uc.loop.Do(ctx, func() error {
		if uc.sessionID != "" {
			logger.Info("Replacing map view",
				logger.String("old_session_id", uc.sessionID),
				logger.SessionID(sessionID))
		}

		b := bridge.New(dispatcher, uc.overlays)
		b.OnPointAdded(uc.onPointAdded)
		uc.bridge = b
		uc.sessionID = sessionID

		b.Send(models.SetWaypoints(uc.departText(), uc.list.Snapshot()))
		uc.watchLoad(b)
		return nil
	})
}

// watchLoad drops the queue of a bridge whose view never reports loaded
func (uc *PlannerUC) watchLoad(b *bridge.Bridge) {
	timeout := time.Duration(uc.cfg.Bridge.LoadTimeoutSeconds) * time.Second
	if timeout <= 0 {
		return
	}
	time.AfterFunc(timeout, func() {
		_ = uc.loop.Post(func() {
			if uc.bridge != b || b.State() == bridge.StateReady {
				return
			}
			if dropped := b.ExpireLoading(); dropped > 0 {
				logger.Warn("Map view did not load in time",
					logger.SessionID(uc.sessionID),
					logger.Int("dropped", dropped),
					logger.Duration("timeout", timeout))
			}
		})
	})
}

// ViewLoaded marks the view of sessionID ready
func (uc *PlannerUC) ViewLoaded(ctx context.Context, sessionID string) error {
	return uc.loop.Do(ctx, func() error {
		if !uc.isCurrent(sessionID) {
			return nil
		}
		uc.bridge.MarkReady()
		return nil
	})
}

// ViewDisconnected detaches the view of sessionID
func (uc *PlannerUC) ViewDisconnected(ctx context.Context, sessionID string) error {
	return uc.loop.Do(ctx, func() error {
		if !uc.isCurrent(sessionID) {
			return nil
		}
		uc.bridge = nil
		uc.sessionID = ""
		logger.Info("Map view detached", logger.SessionID(sessionID))
		return nil
	})
}

// PointAdded relays a point the user added inside the view
func (uc *PlannerUC) PointAdded(ctx context.Context, sessionID string, event models.BridgeEvent) error {
	return uc.loop.Do(ctx, func() error {
		if !uc.isCurrent(sessionID) {
			return nil
		}
		uc.bridge.HandleEvent(event)
		return nil
	})
}

func (uc *PlannerUC) isCurrent(sessionID string) bool {
	if uc.bridge == nil || sessionID != uc.sessionID {
		logger.Debug("Ignoring event from stale map view", logger.SessionID(sessionID))
		return false
	}
	return true
}

// onPointAdded applies the manual-entry policy to a view point. Unknown roles
// become VIA. Rejections are reported back to the view.
func (uc *PlannerUC) onPointAdded(event models.BridgeEvent) {
	role, known := models.ParseRole(event.Role)
	if !known {
		logger.Debug("Unknown point role, using VIA", logger.String("type", event.Role))
	}

	if _, err := uc.insert(role, event.Label, event.Lat, event.Lon); err != nil {
		logger.Warn("Point from map view rejected",
			logger.String("type", string(role)),
			logger.Float64("lat", event.Lat),
			logger.Float64("lon", event.Lon),
			logger.Err(err))
		uc.send(models.SetInfo(fmt.Sprintf(constants.InfoPointRejected, err.Error())))
	}
}
