package calculator

import (
	"context"
	"fmt"
	"time"

	"bmi-calculator/internal/health"
	"bmi-calculator/internal/session"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Service runs calculations and owns the side effect on session history.
type Service struct {
	store session.Store
}

func NewService(store session.Store) *Service {
	return &Service{store: store}
}

// Calculate computes the result bundle for m and appends its record to the
// session's history. Nothing is recorded when the computation fails.
func (s *Service) Calculate(ctx context.Context, sessionID string, m health.Measurement) (health.Result, error) {
	ctx, span := tracer.Start(ctx, "calculator.calculate",
		trace.WithAttributes(
			attribute.String("session.id", sessionID),
			attribute.Float64("measurement.weight_kg", m.WeightKg),
			attribute.Float64("measurement.height", m.HeightRaw),
			attribute.String("measurement.height_unit", string(m.HeightUnit)),
			attribute.Int("measurement.age", m.AgeYears),
			attribute.String("measurement.gender", string(m.Gender)),
			attribute.String("measurement.activity_level", string(m.ActivityLevel)),
		),
	)
	defer span.End()

	start := time.Now()
	res, err := health.Calculate(m)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return health.Result{}, err
	}

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("bmi", res.BMI),
		attribute.String("category", string(res.Band.Category)),
		attribute.Float64("bmr", res.BMR),
		attribute.Int("calories", res.Calories),
		attribute.Float64("duration_ms", elapsed),
	))

	if err := s.appendRecord(ctx, sessionID, res.Record); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "history append failed")
		return health.Result{}, err
	}

	span.SetStatus(codes.Ok, "")

	categoryAttrs := metric.WithAttributes(attribute.String("category", string(res.Band.Category)))
	calcCounter.Add(ctx, 1, categoryAttrs)
	bmiHistogram.Record(ctx, res.BMI, categoryAttrs)
	opsHistogram.Record(ctx, elapsed, metric.WithAttributes(attribute.String("operation", "calculate")))
	caloriesGauge.Record(ctx, int64(res.Calories))

	return res, nil
}

func (s *Service) appendRecord(ctx context.Context, sessionID string, rec health.Record) error {
	ctx, span := tracer.Start(ctx, "calculator.history.append",
		trace.WithAttributes(attribute.String("session.id", sessionID)),
	)
	defer span.End()

	if err := s.store.Append(ctx, sessionID, rec); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "append failed")
		return fmt.Errorf("record calculation: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// History returns the session's records, most recent first.
func (s *Service) History(ctx context.Context, sessionID string) ([]health.Record, error) {
	ctx, span := tracer.Start(ctx, "calculator.history.list",
		trace.WithAttributes(attribute.String("session.id", sessionID)),
	)
	defer span.End()

	records, err := s.store.List(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return nil, fmt.Errorf("list history: %w", err)
	}

	span.SetAttributes(attribute.Int("history.count", len(records)))
	return records, nil
}

// Reset clears the session's history.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	ctx, span := tracer.Start(ctx, "calculator.history.reset",
		trace.WithAttributes(attribute.String("session.id", sessionID)),
	)
	defer span.End()

	if err := s.store.Reset(ctx, sessionID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reset failed")
		return fmt.Errorf("reset history: %w", err)
	}

	resetCounter.Add(ctx, 1)
	return nil
}
