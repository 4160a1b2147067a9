package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"bangsafe/pkg/domain"
	"bangsafe/pkg/logger"
	"bangsafe/pkg/metrics"
	"bangsafe/pkg/serrors"
	"bangsafe/pkg/storage"
	"bangsafe/pkg/urlrisk"
)

// TracerName is the instrumentation scope of scanner spans.
const TracerName = "bangsafe/internal/scanner"

// Options configure the scanner's collaborators. Zero values fall back to
// the wall clock, no-op metrics and the global tracer provider.
type Options struct {
	// Now returns the current time. Used to stamp scans and reports.
	Now func() time.Time
	// Metrics records scan and report counters.
	Metrics *metrics.Instruments
	// Tracer creates spans around scanner operations.
	Tracer trace.Tracer
}

// scanner is the concrete implementation of the Scanner interface.
type scanner struct {
	options Options
	// storage persists abuse reports.
	storage storage.ReportStorage
}

// Scan trims and normalizes rawURL, scores it and stamps the request time.
// An empty input yields serrors.ErrBadRequest.
func (s scanner) Scan(ctx context.Context, rawURL string) (*domain.Scan, error) {
	ctx, span := s.options.Tracer.Start(ctx, "scanner.Scan")
	defer span.End()

	URL, host, err := urlrisk.Normalize(rawURL)
	if err != nil {
		span.SetStatus(codes.Error, "invalid url")

		return nil, err
	}

	result := urlrisk.ScoreDomain(URL, host)
	span.SetAttributes(
		attribute.String("bangsafe.domain", host),
		attribute.Int("bangsafe.score", result.Score),
		attribute.String("bangsafe.verdict", string(result.Verdict)),
	)
	s.options.Metrics.RecordScan(ctx, result.Verdict, result.Score)

	logger.Debug(ctx, "scored url",
		zap.String("url", URL),
		zap.Int("score", result.Score),
		zap.String("verdict", string(result.Verdict)))

	return &domain.Scan{
		ScoreResult:       result,
		URL:               URL,
		RequestedAt:       s.options.Now(),
		UnicodeDomain:     urlrisk.UnicodeDomain(host),
		RegistrableDomain: urlrisk.RegistrableDomain(host),
	}, nil
}

// Report appends a new report for URL. The URL is neither trimmed nor
// normalized; only an empty one is rejected.
func (s scanner) Report(ctx context.Context, URL string, note string) (*domain.Report, error) {
	ctx, span := s.options.Tracer.Start(ctx, "scanner.Report")
	defer span.End()

	if URL == "" {
		span.SetStatus(codes.Error, "missing url")

		return nil, serrors.With(serrors.ErrBadRequest, "Missing url")
	}

	report := domain.Report{
		ID:        domain.ReportID(uuid.New()),
		URL:       URL,
		Note:      note,
		CreatedAt: s.options.Now(),
	}
	span.SetAttributes(attribute.String("bangsafe.report_id", report.ID.String()))

	stored, err := s.storage.AppendReport(ctx, report)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not store report")

		return nil, fmt.Errorf("could not store report: %w", err)
	}
	s.options.Metrics.RecordReport(ctx)

	logger.Info(ctx, "stored report", zap.String("report_id", stored.ID.String()))

	return stored, nil
}

// Reports returns at most limit reports, newest first. A negative limit
// yields serrors.ErrBadRequest.
func (s scanner) Reports(ctx context.Context, limit int) ([]domain.Report, error) {
	ctx, span := s.options.Tracer.Start(ctx, "scanner.Reports",
		trace.WithAttributes(attribute.Int("bangsafe.limit", limit)))
	defer span.End()

	if limit < 0 {
		span.SetStatus(codes.Error, "negative limit")

		return nil, serrors.With(serrors.ErrBadRequest, "limit must be a non-negative integer")
	}

	reports, err := s.storage.LatestReports(ctx, uint(limit))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not list reports")

		return nil, fmt.Errorf("could not get latest reports: %w", err)
	}

	return reports, nil
}

// New creates a new Scanner instance backed by the provided storage and
// configured with the given options.
func New(storage storage.ReportStorage, options Options) Scanner {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Metrics == nil {
		options.Metrics = metrics.Noop()
	}
	if options.Tracer == nil {
		options.Tracer = otel.Tracer(TracerName)
	}

	return &scanner{
		options: options,
		storage: storage,
	}
}
