package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	calcCounter   metric.Int64Counter
	opsHistogram  metric.Float64Histogram
	bmiHistogram  metric.Float64Histogram
	errorCounter  metric.Int64Counter
	caloriesGauge metric.Int64Gauge
	resetCounter  metric.Int64Counter
)

// InitMetrics registers the calculator's OTel instruments.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	calcCounter, err = meter.Int64Counter("calculator.calculations.total",
		metric.WithDescription("Successful BMI calculations by category"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("calculator.operation.duration",
		metric.WithDescription("Duration of calculator operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	bmiHistogram, err = meter.Float64Histogram("calculator.bmi",
		metric.WithDescription("Distribution of computed BMI values"),
		metric.WithUnit("kg/m2"),
		metric.WithExplicitBucketBoundaries(16, 18.5, 25, 30, 35, 40),
	)
	if err != nil {
		return fmt.Errorf("creating bmi histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of calculator errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	caloriesGauge, err = meter.Int64Gauge("calculator.last_calories",
		metric.WithDescription("Daily calorie estimate of the last calculation"),
		metric.WithUnit("kcal"),
	)
	if err != nil {
		return fmt.Errorf("creating calories gauge: %w", err)
	}

	resetCounter, err = meter.Int64Counter("calculator.history.resets.total",
		metric.WithDescription("Total number of history resets"),
		metric.WithUnit("{reset}"),
	)
	if err != nil {
		return fmt.Errorf("creating reset counter: %w", err)
	}

	return nil
}
