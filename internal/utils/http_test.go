package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "Success with string data",
			statusCode: http.StatusOK,
			message:    "Waypoints retrieved",
			data:       "test data",
		},
		{
			name:       "Success with map data",
			statusCode: http.StatusCreated,
			message:    "Waypoint added",
			data:       map[string]interface{}{"index": float64(1), "type": "VIA"},
		},
		{
			name:       "Success with nil data",
			statusCode: http.StatusOK,
			message:    "Success",
			data:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestValidationErrorResponse(t *testing.T) {
	c, rec := newContext()

	err := ValidationErrorResponse(c, "latitude, longitude is required", []string{"latitude", "longitude"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "latitude, longitude is required", response.Error)
	assert.Equal(t, []string{"latitude", "longitude"}, response.Fields)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		send       func(echo.Context, string) error
		message    string
		statusCode int
		expected   string
	}{
		{name: "bad request", send: BadRequestResponse, message: "Invalid input", statusCode: http.StatusBadRequest, expected: "Invalid input"},
		{name: "not found default", send: NotFoundResponse, statusCode: http.StatusNotFound, expected: "Resource not found"},
		{name: "not found", send: NotFoundResponse, message: "no report", statusCode: http.StatusNotFound, expected: "no report"},
		{name: "conflict default", send: ConflictResponse, statusCode: http.StatusConflict, expected: "Conflict"},
		{name: "conflict", send: ConflictResponse, message: "in progress", statusCode: http.StatusConflict, expected: "in progress"},
		{name: "internal default", send: InternalServerErrorResponse, statusCode: http.StatusInternalServerError, expected: "Internal server error"},
		{name: "bad gateway default", send: BadGatewayResponse, statusCode: http.StatusBadGateway, expected: "Upstream service failed"},
		{name: "bad gateway", send: BadGatewayResponse, message: "land crossing", statusCode: http.StatusBadGateway, expected: "land crossing"},
		{name: "unavailable default", send: ServiceUnavailableResponse, statusCode: http.StatusServiceUnavailable, expected: "Service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			err := tt.send(c, tt.message)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response ErrorResponse
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.False(t, response.Success)
			assert.Equal(t, tt.expected, response.Error)
			assert.Equal(t, tt.statusCode, response.Code)
		})
	}
}
