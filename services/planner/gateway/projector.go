package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
	natspkg "github.com/Taeppir/Link/internal/pkg/nats"
	"github.com/Taeppir/Link/services/planner"
)

// NATSProjector publishes route reports on a NATS subject
type NATSProjector struct {
	client  *natspkg.Client
	subject string
}

// NewNATSProjector creates a NATS report projector
func NewNATSProjector(client *natspkg.Client, subject string) *NATSProjector {
	return &NATSProjector{client: client, subject: subject}
}

// Project publishes report
func (p *NATSProjector) Project(ctx context.Context, report models.RouteReport) error {
	if err := p.client.PublishJSON(p.subject, report); err != nil {
		return fmt.Errorf("failed to publish route report: %w", err)
	}
	return nil
}

// nsqPublisher is the part of the NSQ producer the projector needs
type nsqPublisher interface {
	Publish(topic string, message interface{}) error
}

// NSQProjector publishes route reports on an NSQ topic
type NSQProjector struct {
	producer nsqPublisher
	topic    string
}

// NewNSQProjector creates an NSQ report projector
func NewNSQProjector(producer nsqPublisher, topic string) *NSQProjector {
	return &NSQProjector{producer: producer, topic: topic}
}

// Project publishes report
func (p *NSQProjector) Project(ctx context.Context, report models.RouteReport) error {
	if err := p.producer.Publish(p.topic, report); err != nil {
		return fmt.Errorf("failed to publish route report: %w", err)
	}
	return nil
}

// LogProjector writes a summary of every report to the log
type LogProjector struct{}

// Project logs report
func (LogProjector) Project(ctx context.Context, report models.RouteReport) error {
	logger.Info("Route report",
		logger.RequestID(report.RequestID),
		logger.Float64("distance_km", report.DistanceKm),
		logger.Float64("time_hours", report.TimeHours),
		logger.Float64("fuel_tons", report.FuelTons),
		logger.Float64("optimal_distance_km", report.OptimalDistanceKm),
		logger.Float64("optimal_time_hours", report.OptimalTimeHours),
		logger.Float64("optimal_fuel_tons", report.OptimalFuelTons),
		logger.Float64("fuel_saving_percent", report.FuelSavingPercent),
		logger.Int("path_points", len(report.SampledPath)))
	return nil
}

// MultiProjector fans a report out to every sink. One failing sink does not
// stop the others.
type MultiProjector struct {
	sinks []planner.ReportProjector
}

// NewMultiProjector creates a projector over sinks
func NewMultiProjector(sinks ...planner.ReportProjector) *MultiProjector {
	return &MultiProjector{sinks: sinks}
}

// Len returns the number of sinks
func (m *MultiProjector) Len() int {
	return len(m.sinks)
}

// Project sends report to every sink and joins their errors
func (m *MultiProjector) Project(ctx context.Context, report models.RouteReport) error {
	var errs []error
	for _, sink := range m.sinks {
		if err := sink.Project(ctx, report); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
