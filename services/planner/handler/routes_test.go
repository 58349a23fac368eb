package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/Taeppir/Link/services/planner/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := echo.New()
	NewHandler(mocks.NewMockPlannerUC(ctrl), &models.Config{}).RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"GET /api/waypoints",
		"POST /api/waypoints",
		"DELETE /api/waypoints",
		"DELETE /api/waypoints/:index",
		"PUT /api/departure",
		"POST /api/route",
		"POST /api/overlays/:name",
		"POST /api/map/undo",
		"POST /api/map/clear",
		"GET /api/ports",
		"GET /api/report",
		"POST /api/view/token",
		"GET /ws/map",
	}
	for _, route := range expected {
		assert.True(t, registered[route], route)
	}
}

func TestRegisterRoutes_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlannerUC := mocks.NewMockPlannerUC(ctrl)
	e := echo.New()
	NewHandler(mockPlannerUC, &models.Config{}).RegisterRoutes(e)

	mockPlannerUC.EXPECT().DeleteWaypoint(gomock.Any(), 2).Return(models.Snapshot{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/waypoints/2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// clearing without confirmation never reaches the usecase
	req = httptest.NewRequest(http.MethodDelete, "/api/waypoints", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
