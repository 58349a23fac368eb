package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Taeppir/Link/internal/pkg/jwt"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/Taeppir/Link/internal/utils"
	"github.com/Taeppir/Link/services/planner"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PlannerHandler handles HTTP requests for the waypoint planner
type PlannerHandler struct {
	plannerUC planner.PlannerUC
	bridgeCfg models.BridgeConfig
}

// NewPlannerHandler creates a new planner HTTP handler
func NewPlannerHandler(plannerUC planner.PlannerUC, bridgeCfg models.BridgeConfig) *PlannerHandler {
	return &PlannerHandler{
		plannerUC: plannerUC,
		bridgeCfg: bridgeCfg,
	}
}

// ListWaypoints returns the waypoint table
func (h *PlannerHandler) ListWaypoints(c echo.Context) error {
	snapshot, err := h.plannerUC.Snapshot(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to read waypoints", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Waypoints retrieved", snapshot)
}

// AddWaypoint handles the waypoint form
func (h *PlannerHandler) AddWaypoint(c echo.Context) error {
	var req waypointRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return respondError(c, "Invalid waypoint", err)
	}

	result, err := h.plannerUC.AddWaypoint(c.Request().Context(), input)
	if err != nil {
		return respondError(c, "Invalid waypoint", err)
	}

	message := "Waypoint added"
	if result.Advisory != "" {
		message = result.Advisory
	}
	return utils.SuccessResponse(c, http.StatusCreated, message, result)
}

// DeleteWaypoint removes the waypoint at the :index path parameter
func (h *PlannerHandler) DeleteWaypoint(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return utils.BadRequestResponse(c, "Index must be an integer")
	}

	snapshot, err := h.plannerUC.DeleteWaypoint(c.Request().Context(), index)
	if err != nil {
		return respondError(c, "Failed to delete waypoint", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Waypoint deleted", snapshot)
}

// ClearWaypoints empties the list. The caller must confirm with ?confirm=true.
func (h *PlannerHandler) ClearWaypoints(c echo.Context) error {
	if confirmed, _ := strconv.ParseBool(c.QueryParam("confirm")); !confirmed {
		return utils.ConflictResponse(c, "Clearing all waypoints requires confirm=true")
	}

	if err := h.plannerUC.ClearWaypoints(c.Request().Context()); err != nil {
		return respondError(c, "Failed to clear waypoints", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Waypoints cleared", models.Snapshot{})
}

// SetDeparture stores the departure time used by the next route search
func (h *PlannerHandler) SetDeparture(c echo.Context) error {
	var req departureRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	departure, err := parseDeparture(req.DepartTime)
	if err != nil {
		return respondError(c, "Invalid departure time", err)
	}

	if err := h.plannerUC.SetDeparture(c.Request().Context(), departure); err != nil {
		return respondError(c, "Failed to set departure time", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Departure time set", departureRequest{
		DepartTime: departure.Format(models.DepartureLayout),
	})
}

// FindRoute runs a route search and waits for the result
func (h *PlannerHandler) FindRoute(c echo.Context) error {
	outcome, err := h.plannerUC.FindRoute(c.Request().Context())
	if err != nil {
		return respondError(c, "Route search failed", err)
	}

	logger.Info("Route search completed",
		logger.RequestID(outcome.Request.ID),
		logger.String("client_ip", c.RealIP()))

	return utils.SuccessResponse(c, http.StatusOK, "Route found", outcome)
}

// ToggleOverlay switches the :name map layer
func (h *PlannerHandler) ToggleOverlay(c echo.Context) error {
	var req overlayRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	name := c.Param("name")
	if err := h.plannerUC.ToggleOverlay(c.Request().Context(), name, req.On); err != nil {
		return respondError(c, "Failed to toggle overlay", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Overlay updated", models.OverlayPayload{Name: name, On: req.On})
}

// UndoInteractive removes the last point drawn inside the map view
func (h *PlannerHandler) UndoInteractive(c echo.Context) error {
	if err := h.plannerUC.UndoInteractive(c.Request().Context()); err != nil {
		return respondError(c, "Failed to undo map point", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Undo sent to map view", nil)
}

// ClearInteractive removes every point drawn inside the map view
func (h *PlannerHandler) ClearInteractive(c echo.Context) error {
	if err := h.plannerUC.ClearInteractive(c.Request().Context()); err != nil {
		return respondError(c, "Failed to clear map points", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Clear sent to map view", nil)
}

// SearchPorts looks up ports by the q query parameter
func (h *PlannerHandler) SearchPorts(c echo.Context) error {
	ports, err := h.plannerUC.SearchPorts(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return respondError(c, "Port search failed", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ports retrieved", ports)
}

// LatestReport returns the report of the last successful route search
func (h *PlannerHandler) LatestReport(c echo.Context) error {
	report, err := h.plannerUC.LatestReport(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to read report", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Report retrieved", report)
}

// IssueViewToken signs a session token for the embedded map view
func (h *PlannerHandler) IssueViewToken(c echo.Context) error {
	if h.bridgeCfg.Secret == "" {
		return utils.NotFoundResponse(c, "View tokens are disabled")
	}

	sessionID := uuid.NewString()
	token, expiresAt, err := jwt.GenerateViewToken(sessionID, h.bridgeCfg)
	if err != nil {
		logger.Error("Failed to sign view token", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to sign view token")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "View token issued", map[string]interface{}{
		"token":      token,
		"expires_at": expiresAt,
		"session_id": sessionID,
	})
}

// respondError maps planner errors onto HTTP status codes
func respondError(c echo.Context, action string, err error) error {
	var (
		validationErr *models.ValidationError
		indexErr      *models.IndexError
		engineErr     *models.EngineError
	)

	switch {
	case errors.As(err, &validationErr):
		return utils.ValidationErrorResponse(c, validationErr.Error(), validationErr.Fields)
	case errors.As(err, &indexErr):
		return utils.NotFoundResponse(c, indexErr.Error())
	case errors.As(err, &engineErr):
		logger.Warn(action, logger.Err(err))
		return utils.BadGatewayResponse(c, engineErr.Error())
	case errors.Is(err, models.ErrRouteInFlight),
		errors.Is(err, models.ErrViewNotConnected):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, models.ErrUnknownOverlay),
		errors.Is(err, models.ErrNoReport):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrLoopStopped),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return utils.ServiceUnavailableResponse(c, err.Error())
	default:
		logger.Error(action, logger.Err(err))
		return utils.InternalServerErrorResponse(c, action)
	}
}
