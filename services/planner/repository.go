package planner

import (
	"context"

	"github.com/Taeppir/Link/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Taeppir/Link/services/planner PortRepo,ReportRepo

// PortRepo looks up ports from the static port list
type PortRepo interface {
	Search(ctx context.Context, query string) ([]models.Port, error)
}

// ReportRepo reads back the latest projected route report
type ReportRepo interface {
	Latest(ctx context.Context) (*models.RouteReport, bool)
}
