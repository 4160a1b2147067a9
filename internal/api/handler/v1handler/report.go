package v1handler

import (
	"context"

	"github.com/google/uuid"

	"bangsafe/internal/api/specs/v1specs"
	"bangsafe/pkg/domain"
)

// DefaultLimit is the number of reports listed when no limit is given.
const DefaultLimit = 100

// StatusOK is the status of successful acknowledgements.
const StatusOK = "ok"

func ReportToV1Specs(in *domain.Report) v1specs.Report {
	return v1specs.Report{
		ID:   uuid.UUID(in.ID),
		URL:  in.URL,
		Note: in.Note,
		Ts:   domain.EpochSeconds(in.CreatedAt),
	}
}

// CreateReport stores a report. A null url is treated as a missing one.
func (h Handler) CreateReport(ctx context.Context, req *v1specs.ReportRequest) (*v1specs.ReportCreated, error) {
	report, err := h.deps.Scanner.Report(ctx, req.URL.Or(""), req.Note.Or(""))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.ReportCreated{
		Status: StatusOK,
		Entry:  ReportToV1Specs(report),
	}, nil
}

// ListReports returns the latest reports, newest first.
func (h Handler) ListReports(ctx context.Context, params v1specs.ListReportsParams) ([]v1specs.Report, error) {
	reports, err := h.deps.Scanner.Reports(ctx, params.Limit.Or(DefaultLimit))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	out := make([]v1specs.Report, 0, len(reports))
	for i := range reports {
		out = append(out, ReportToV1Specs(&reports[i]))
	}

	return out, nil
}
