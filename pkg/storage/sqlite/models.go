package sqlite

import (
	"fmt"

	"github.com/google/uuid"

	"bangsafe/pkg/domain"
)

type SQLiteReport struct {
	Seq       int64   `db:"seq"        goqu:"skipinsert"`
	ID        string  `db:"id"`
	URL       string  `db:"url"`
	Note      string  `db:"note"`
	CreatedAt float64 `db:"created_at"`
}

func (r *SQLiteReport) ToDomain() (*domain.Report, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("could not parse report id: %w", err)
	}

	return &domain.Report{
		ID:        domain.ReportID(id),
		URL:       r.URL,
		Note:      r.Note,
		CreatedAt: domain.FromEpochSeconds(r.CreatedAt),
	}, nil
}

func (r *SQLiteReport) FromDomain(report domain.Report) {
	*r = SQLiteReport{
		ID:        report.ID.String(),
		URL:       report.URL,
		Note:      report.Note,
		CreatedAt: domain.EpochSeconds(report.CreatedAt),
	}
}

func liteReportsToDomain(reports []SQLiteReport) ([]domain.Report, error) {
	out := make([]domain.Report, 0, len(reports))
	for _, report := range reports {
		d, err := report.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
