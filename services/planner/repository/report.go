package repository

import (
	"context"
	"sync"

	"github.com/Taeppir/Link/internal/pkg/models"
)

// ReportBoard keeps the latest route report in memory. It is both a report
// projector and the source of the report endpoint.
type ReportBoard struct {
	mu     sync.RWMutex
	latest *models.RouteReport
}

// NewReportBoard creates an empty board
func NewReportBoard() *ReportBoard {
	return &ReportBoard{}
}

// Project replaces the latest report
func (b *ReportBoard) Project(ctx context.Context, report models.RouteReport) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	r := report
	b.latest = &r
	return nil
}

// Latest returns a copy of the latest report
func (b *ReportBoard) Latest(ctx context.Context) (*models.RouteReport, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.latest == nil {
		return nil, false
	}
	r := *b.latest
	return &r, true
}
