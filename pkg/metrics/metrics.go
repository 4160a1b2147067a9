// Package metrics defines the OpenTelemetry instruments recorded by the service.
// Instruments are created from a metric.Meter; a nil meter yields no-op
// instruments so that callers never need to check for them.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"bangsafe/pkg/domain"
)

// MeterName is the instrumentation scope of every instrument in this package.
const MeterName = "bangsafe"

// scoreBuckets follow the verdict thresholds.
var scoreBuckets = []float64{0, 10, 24, 25, 40, 59, 60, 80, 100} //nolint: gochecknoglobals

// Instruments groups the service instruments.
type Instruments struct {
	scans     metric.Int64Counter
	scanScore metric.Int64Histogram
	reports   metric.Int64Counter
}

// New creates all instruments on meter.
func New(meter metric.Meter) (*Instruments, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter(MeterName)
	}

	scans, err := meter.Int64Counter("bangsafe.scans",
		metric.WithDescription("Number of scored URLs by verdict."),
		metric.WithUnit("{scan}"))
	if err != nil {
		return nil, fmt.Errorf("could not create scans counter: %w", err)
	}

	scanScore, err := meter.Int64Histogram("bangsafe.scan.score",
		metric.WithDescription("Distribution of risk scores."),
		metric.WithUnit("1"),
		metric.WithExplicitBucketBoundaries(scoreBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create score histogram: %w", err)
	}

	reports, err := meter.Int64Counter("bangsafe.reports",
		metric.WithDescription("Number of stored abuse reports."),
		metric.WithUnit("{report}"))
	if err != nil {
		return nil, fmt.Errorf("could not create reports counter: %w", err)
	}

	return &Instruments{
		scans:     scans,
		scanScore: scanScore,
		reports:   reports,
	}, nil
}

// Noop returns instruments that record nothing.
func Noop() *Instruments {
	i, _ := New(nil)

	return i
}

// RecordScan counts a scored URL and records its score.
func (i *Instruments) RecordScan(ctx context.Context, verdict domain.Verdict, score int) {
	attrs := metric.WithAttributes(attribute.String("verdict", string(verdict)))
	i.scans.Add(ctx, 1, attrs)
	i.scanScore.Record(ctx, int64(score), attrs)
}

// RecordReport counts a stored report.
func (i *Instruments) RecordReport(ctx context.Context) {
	i.reports.Add(ctx, 1)
}
