package metrics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"bangsafe/pkg/domain"
	"bangsafe/pkg/metrics"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}

	return out
}

func TestInstruments(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	inst, err := metrics.New(mp.Meter(metrics.MeterName))
	require.NoError(t, err)

	ctx := context.Background()
	inst.RecordScan(ctx, domain.VerdictSafe, 0)
	inst.RecordScan(ctx, domain.VerdictSafe, 24)
	inst.RecordScan(ctx, domain.VerdictDanger, 68)
	inst.RecordReport(ctx)

	got := collect(t, reader)

	scans, ok := got["bangsafe.scans"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	byVerdict := map[string]int64{}
	for _, dp := range scans.DataPoints {
		v, _ := dp.Attributes.Value(attribute.Key("verdict"))
		byVerdict[v.AsString()] = dp.Value
	}
	require.Equal(t, map[string]int64{"safe": 2, "danger": 1}, byVerdict)

	scores, ok := got["bangsafe.scan.score"].Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	var count uint64
	for _, dp := range scores.DataPoints {
		count += dp.Count
	}
	require.Equal(t, uint64(3), count)

	reports, ok := got["bangsafe.reports"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, reports.DataPoints, 1)
	require.Equal(t, int64(1), reports.DataPoints[0].Value)
	require.Equal(t, []float64{0, 10, 24, 25, 40, 59, 60, 80, 100}, scores.DataPoints[0].Bounds)
}

func TestNoop(t *testing.T) {
	inst := metrics.Noop()
	require.NotNil(t, inst)
	require.NotPanics(t, func() {
		inst.RecordScan(context.Background(), domain.VerdictSuspicious, 30)
		inst.RecordReport(context.Background())
	})
}
