package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Taeppir/Link/internal/pkg/constants"
	ctxpkg "github.com/Taeppir/Link/internal/pkg/context"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
	pkgws "github.com/Taeppir/Link/internal/pkg/websocket"
	"github.com/Taeppir/Link/services/planner"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// ViewHandler serves the embedded map view connection
type ViewHandler struct {
	plannerUC planner.PlannerUC
	manager   *pkgws.Manager
	cfg       models.BridgeConfig
}

// NewViewHandler creates a new map view handler
func NewViewHandler(plannerUC planner.PlannerUC, manager *pkgws.Manager, cfg models.BridgeConfig) *ViewHandler {
	return &ViewHandler{
		plannerUC: plannerUC,
		manager:   manager,
		cfg:       cfg,
	}
}

// HandleView upgrades the request and runs the view session until it disconnects
func (h *ViewHandler) HandleView(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serve)
}

func (h *ViewHandler) serve(client *models.ViewClient) error {
	ctx, cancel := context.WithCancel(ctxpkg.WithSessionID(context.Background(), client.SessionID))
	defer cancel()

	link := newViewLink(client, h.manager, h.cfg)
	go link.run(ctx)

	if err := h.plannerUC.ViewConnected(ctx, client.SessionID, link); err != nil {
		logger.Error("Failed to attach map view",
			logger.SessionID(client.SessionID),
			logger.Err(err))
		return err
	}
	logger.Info("Map view connected", logger.SessionID(client.SessionID))

	defer func() {
		if err := h.plannerUC.ViewDisconnected(context.Background(), client.SessionID); err != nil {
			logger.Warn("Failed to detach map view",
				logger.SessionID(client.SessionID),
				logger.Err(err))
		}
	}()

	for {
		var msg models.WSMessage
		if err := client.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Map view connection closed unexpectedly",
					logger.SessionID(client.SessionID),
					logger.Err(err))
			} else {
				logger.Info("Map view disconnected", logger.SessionID(client.SessionID))
			}
			return nil
		}

		h.handleMessage(ctx, link, &msg)
	}
}

func (h *ViewHandler) handleMessage(ctx context.Context, link *viewLink, msg *models.WSMessage) {
	switch msg.Event {
	case constants.EventViewLoaded:
		if err := h.plannerUC.ViewLoaded(ctx, link.sessionID); err != nil {
			link.sendError(err, constants.ErrorInternalError, constants.ErrorSeverityServer)
		}
	case constants.EventViewHandlers:
		var announcement models.HandlersAnnouncement
		if err := json.Unmarshal(msg.Data, &announcement); err != nil {
			link.sendError(err, constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
			return
		}
		link.announce(announcement.Names)
		logger.Debug("Map view handlers announced",
			logger.SessionID(link.sessionID),
			logger.Strings("names", announcement.Names))
	case constants.EventPointAdded:
		var event models.BridgeEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			link.sendError(err, constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
			return
		}
		if err := h.plannerUC.PointAdded(ctx, link.sessionID, event); err != nil {
			link.sendError(err, constants.ErrorInternalError, constants.ErrorSeverityServer)
		}
	case constants.EventPing:
		if err := link.send(constants.EventPong, nil); err != nil {
			logger.Warn("Failed to answer ping",
				logger.SessionID(link.sessionID),
				logger.Err(err))
		}
	default:
		link.sendError(fmt.Errorf("unknown event type: %s", msg.Event),
			constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
	}
}
