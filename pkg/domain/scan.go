package domain

import "time"

// Verdict is the categorical risk label derived from a score.
type Verdict string

const (
	// VerdictSafe is assigned to scores below the suspicious threshold.
	VerdictSafe Verdict = "safe"
	// VerdictSuspicious is assigned to scores in [SuspiciousThreshold, DangerThreshold).
	VerdictSuspicious Verdict = "suspicious"
	// VerdictDanger is assigned to scores at or above DangerThreshold.
	VerdictDanger Verdict = "danger"
)

const (
	// MaxScore is the upper bound of every risk score.
	MaxScore = 100
	// DangerThreshold is the lowest score mapped to VerdictDanger.
	DangerThreshold = 60
	// SuspiciousThreshold is the lowest score mapped to VerdictSuspicious.
	SuspiciousThreshold = 25
)

// VerdictFor maps a clamped score to its verdict. The first matching tier wins.
func VerdictFor(score int) Verdict {
	switch {
	case score >= DangerThreshold:
		return VerdictDanger
	case score >= SuspiciousThreshold:
		return VerdictSuspicious
	default:
		return VerdictSafe
	}
}

// ScoreResult is the outcome of scoring a single URL. It is built once per
// call and never mutated afterwards.
type ScoreResult struct {
	// Score is the capped sum of all triggered rule weights, in [0, MaxScore].
	Score int
	// Reasons holds one human-readable line per triggered rule, in rule order.
	Reasons []string
	// Verdict is derived from Score via VerdictFor.
	Verdict Verdict
	// Domain is the lowercase host the rules were evaluated against.
	Domain string
}

// Scan wraps a ScoreResult with the request-level data returned to callers.
type Scan struct {
	ScoreResult

	// URL is the normalized URL that was scored.
	URL string
	// RequestedAt is when the scan was requested.
	RequestedAt time.Time
	// UnicodeDomain is the display form of a punycode host; empty otherwise.
	UnicodeDomain string
	// RegistrableDomain is the eTLD+1 of Domain; empty for IP hosts or unknown suffixes.
	RegistrableDomain string
}
