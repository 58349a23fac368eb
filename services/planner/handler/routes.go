package handler

import (
	"github.com/Taeppir/Link/internal/pkg/models"
	pkgws "github.com/Taeppir/Link/internal/pkg/websocket"
	"github.com/Taeppir/Link/services/planner"
	httpHandler "github.com/Taeppir/Link/services/planner/handler/http"
	wsHandler "github.com/Taeppir/Link/services/planner/handler/websocket"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the planner service
type Handler struct {
	plannerHTTP *httpHandler.PlannerHandler
	viewWS      *wsHandler.ViewHandler
}

// NewHandler creates a new combined handler
func NewHandler(plannerUC planner.PlannerUC, cfg *models.Config) *Handler {
	return &Handler{
		plannerHTTP: httpHandler.NewPlannerHandler(plannerUC, cfg.Bridge),
		viewWS:      wsHandler.NewViewHandler(plannerUC, pkgws.NewManager(cfg.Bridge), cfg.Bridge),
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	waypoints := api.Group("/waypoints")
	waypoints.GET("", h.plannerHTTP.ListWaypoints)
	waypoints.POST("", h.plannerHTTP.AddWaypoint)
	waypoints.DELETE("", h.plannerHTTP.ClearWaypoints)
	waypoints.DELETE("/:index", h.plannerHTTP.DeleteWaypoint)

	api.PUT("/departure", h.plannerHTTP.SetDeparture)
	api.POST("/route", h.plannerHTTP.FindRoute)
	api.POST("/overlays/:name", h.plannerHTTP.ToggleOverlay)
	api.POST("/map/undo", h.plannerHTTP.UndoInteractive)
	api.POST("/map/clear", h.plannerHTTP.ClearInteractive)
	api.GET("/ports", h.plannerHTTP.SearchPorts)
	api.GET("/report", h.plannerHTTP.LatestReport)
	api.POST("/view/token", h.plannerHTTP.IssueViewToken)

	e.GET("/ws/map", h.viewWS.HandleView)
}
