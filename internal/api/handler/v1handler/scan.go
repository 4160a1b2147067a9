package v1handler

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"bangsafe/internal/api/specs/v1specs"
	"bangsafe/pkg/domain"
)

func ScanToV1Specs(in *domain.Scan) *v1specs.Scan {
	out := v1specs.Scan{
		Score:       in.Score,
		Reasons:     in.Reasons,
		Verdict:     v1specs.ScanVerdict(in.Verdict),
		Domain:      in.Domain,
		URL:         in.URL,
		RequestedAt: domain.EpochSeconds(in.RequestedAt),
	}
	if out.Reasons == nil {
		out.Reasons = []string{}
	}
	if in.UnicodeDomain != "" {
		out.UnicodeDomain = v1specs.NewOptString(in.UnicodeDomain)
	}
	if in.RegistrableDomain != "" {
		out.RegistrableDomain = v1specs.NewOptString(in.RegistrableDomain)
	}

	return &out
}

// CreateScan scores the submitted URL.
func (h Handler) CreateScan(ctx context.Context, req *v1specs.ScanRequest) (*v1specs.Scan, error) {
	s, err := h.deps.Scanner.Scan(ctx, req.URL)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	if labeler, ok := v1specs.LabelerFromContext(ctx); ok {
		labeler.Add(attribute.String("bangsafe.verdict", string(s.Verdict)))
	}

	return ScanToV1Specs(s), nil
}
