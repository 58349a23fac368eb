package repository

import (
	"context"
	"testing"

	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBoard(t *testing.T) {
	board := NewReportBoard()
	ctx := context.Background()

	_, ok := board.Latest(ctx)
	assert.False(t, ok)

	require.NoError(t, board.Project(ctx, models.RouteReport{RequestID: "a"}))
	require.NoError(t, board.Project(ctx, models.RouteReport{RequestID: "b"}))

	latest, ok := board.Latest(ctx)
	require.True(t, ok)
	assert.Equal(t, "b", latest.RequestID)

	latest.RequestID = "mutated"
	again, _ := board.Latest(ctx)
	assert.Equal(t, "b", again.RequestID)
}
