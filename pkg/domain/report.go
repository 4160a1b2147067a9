package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportID uniquely identifies an abuse report.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ReportID uuid.UUID

// String returns the canonical textual form of the ID.
func (id ReportID) String() string {
	return uuid.UUID(id).String()
}

// Report is a user-submitted flag of a URL, kept for later review.
// Reports are append-only: once stored they are never updated or removed.
type Report struct {
	// ID is the unique identifier of the report.
	ID ReportID
	// URL is the reported address exactly as submitted.
	URL string
	// Note is an optional free-form comment from the reporter.
	Note string
	// CreatedAt is when the report was submitted.
	CreatedAt time.Time
}

// EpochSeconds converts t into fractional seconds since the Unix epoch,
// the timestamp representation used on the wire and in the reports document.
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// FromEpochSeconds is the inverse of EpochSeconds.
func FromEpochSeconds(ts float64) time.Time {
	return time.Unix(0, int64(ts*float64(time.Second))).UTC()
}
