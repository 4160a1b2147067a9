// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence of abuse reports so that different backends (a JSON
// document, SQLite/libSQL or PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"

	"bangsafe/pkg/domain"
)

// ReportStorage defines the append-only log of abuse reports. Reports are never
// updated or removed once appended.
type ReportStorage interface {
	// AppendReport durably stores report at the end of the log and returns it as
	// stored. Concurrent appends must never lose entries.
	AppendReport(ctx context.Context, report domain.Report) (*domain.Report, error)
	// LatestReports returns at most limit reports, newest first. A limit of zero
	// returns an empty list. Readers never observe a partially written report.
	LatestReports(ctx context.Context, limit uint) ([]domain.Report, error)
}

// Storage describes a storage handle together with its lifecycle management.
type Storage interface {
	ReportStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error
}
