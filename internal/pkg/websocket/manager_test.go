package websocket

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Taeppir/Link/internal/pkg/constants"
	"github.com/Taeppir/Link/internal/pkg/jwt"
	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg models.BridgeConfig, handle func(m *Manager, client *models.ViewClient) error) string {
	t.Helper()
	m := NewManager(cfg)
	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return m.HandleConnection(c, func(client *models.ViewClient) error {
			return handle(m, client)
		})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func readMessage(t *testing.T, conn *websocket.Conn) models.WSMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestManager_HandleConnection_NoSecret(t *testing.T) {
	sessions := make(chan string, 1)
	url := newTestServer(t, models.BridgeConfig{}, func(m *Manager, client *models.ViewClient) error {
		sessions <- client.SessionID
		return m.SendMessage(client.Conn, constants.EventPong, nil)
	})

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	msg := readMessage(t, conn)
	assert.Equal(t, constants.EventPong, msg.Event)
	assert.Empty(t, msg.Data)
	assert.NotEmpty(t, <-sessions)
}

func TestManager_HandleConnection_Token(t *testing.T) {
	cfg := models.BridgeConfig{Secret: "view-secret", TokenExpiration: 5, Issuer: "link-test"}
	url := newTestServer(t, cfg, func(m *Manager, client *models.ViewClient) error {
		return m.SendMessage(client.Conn, constants.EventPong, nil)
	})

	token, _, err := jwt.GenerateViewToken("viewer-1", cfg)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(url+"?token=garbage", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", "Token "+token)
		_, resp, err := websocket.DefaultDialer.Dial(url, header)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("query token", func(t *testing.T) {
		conn, _, err := websocket.DefaultDialer.Dial(url+"?token="+token, nil)
		require.NoError(t, err)
		defer conn.Close()
		assert.Equal(t, constants.EventPong, readMessage(t, conn).Event)
	})

	t.Run("bearer header", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", "Bearer "+token)
		conn, _, err := websocket.DefaultDialer.Dial(url, header)
		require.NoError(t, err)
		defer conn.Close()
		assert.Equal(t, constants.EventPong, readMessage(t, conn).Event)
	})
}

func TestManager_SendCategorizedError(t *testing.T) {
	tests := []struct {
		name     string
		severity constants.ErrorSeverity
		want     string
	}{
		{name: "client", severity: constants.ErrorSeverityClient, want: "bad point"},
		{name: "server", severity: constants.ErrorSeverityServer, want: "Operation failed"},
		{name: "security", severity: constants.ErrorSeveritySecurity, want: "Access denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := newTestServer(t, models.BridgeConfig{}, func(m *Manager, client *models.ViewClient) error {
				return m.SendCategorizedError(client.Conn, errors.New("bad point"),
					constants.ErrorValidationFailed, tt.severity, client.SessionID)
			})

			conn, _, err := websocket.DefaultDialer.Dial(url, nil)
			require.NoError(t, err)
			defer conn.Close()

			msg := readMessage(t, conn)
			assert.Equal(t, constants.EventError, msg.Event)
			assert.JSONEq(t, `{"code":"validation_failed","message":"`+tt.want+`"}`, string(msg.Data))
		})
	}
}

func TestManager_SendMessage_NilConn(t *testing.T) {
	m := NewManager(models.BridgeConfig{})
	assert.NoError(t, m.SendMessage(nil, constants.EventPong, nil))
}
