package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Taeppir/Link/internal/pkg/constants"
	"github.com/Taeppir/Link/internal/pkg/jwt"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Manager upgrades map view connections and writes the message envelope
type Manager struct {
	cfg      models.BridgeConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(cfg models.BridgeConfig) *Manager {
	return &Manager{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and upgrades a view connection, then hands
// it to handleClient under a fresh session ID. The connection is closed when
// handleClient returns.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(client *models.ViewClient) error) error {
	if err := m.authenticate(c); err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(&models.ViewClient{
		SessionID: uuid.NewString(),
		Conn:      ws,
	})
}

// authenticate checks the view token when a secret is configured. The token
// is read from the token query parameter or a Bearer authorization header.
func (m *Manager) authenticate(c echo.Context) error {
	if m.cfg.Secret == "" {
		return nil
	}

	tokenString := c.QueryParam("token")
	if tokenString == "" {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "View token is required")
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		tokenString = parts[1]
	}

	claims, err := jwt.ValidateViewToken(tokenString, m.cfg.Secret, m.cfg.Issuer)
	if err != nil {
		logger.Warn("View token validation failed",
			logger.Err(err))
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	logger.Debug("View token accepted", logger.String("token_session_id", claims.SessionID))
	return nil
}

// SendMessage writes one envelope to conn. A nil data leaves the data field out.
// gorilla connections allow a single concurrent writer; callers serialize.
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil
	}

	response := models.WSMessage{Event: event}
	if data != nil {
		rawData, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("error marshaling message data: %w", err)
		}
		response.Data = rawData
	}

	return conn.WriteJSON(response)
}

// SendErrorMessage sends an error message to the view
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// SendCategorizedError sends an error message based on severity level
func (m *Manager) SendCategorizedError(conn *websocket.Conn, err error, code string, severity constants.ErrorSeverity, sessionID string) error {
	logger.Error("WebSocket operation failed",
		logger.SessionID(sessionID),
		logger.String("error_code", code),
		logger.String("severity", severityString(severity)),
		logger.Err(err))

	switch severity {
	case constants.ErrorSeverityClient:
		return m.SendErrorMessage(conn, code, err.Error())
	case constants.ErrorSeveritySecurity:
		logger.Warn("Security-related error occurred",
			logger.SessionID(sessionID),
			logger.String("error_code", code),
			logger.Err(err))
		return m.SendErrorMessage(conn, code, "Access denied")
	default:
		return m.SendErrorMessage(conn, code, "Operation failed")
	}
}

func severityString(severity constants.ErrorSeverity) string {
	switch severity {
	case constants.ErrorSeverityClient:
		return "client"
	case constants.ErrorSeverityServer:
		return "server"
	case constants.ErrorSeveritySecurity:
		return "security"
	default:
		return "unknown"
	}
}
