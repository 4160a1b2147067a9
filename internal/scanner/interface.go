package scanner

import (
	"context"

	"bangsafe/pkg/domain"
)

// Scanner scores URLs and records abuse reports.
//
//go:generate mockgen -package mockscanner -source=interface.go -destination=mock/mockscanner.go *
type Scanner interface {
	// Scan normalizes rawURL, scores it and annotates the result.
	Scan(ctx context.Context, rawURL string) (*domain.Scan, error)
	// Report stores a report for URL exactly as submitted.
	Report(ctx context.Context, URL string, note string) (*domain.Report, error)
	// Reports returns at most limit reports, newest first.
	Reports(ctx context.Context, limit int) ([]domain.Report, error)
}
