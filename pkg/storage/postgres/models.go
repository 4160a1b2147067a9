package postgres

import (
	"time"

	"github.com/google/uuid"

	"bangsafe/pkg/domain"
)

type PgReport struct {
	Seq       int64     `db:"seq"        goqu:"skipinsert"`
	ID        uuid.UUID `db:"id"`
	URL       string    `db:"url"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

func (p *PgReport) ToDomain() *domain.Report {
	return &domain.Report{
		ID:        domain.ReportID(p.ID),
		URL:       p.URL,
		Note:      p.Note,
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func (p *PgReport) FromDomain(report domain.Report) {
	*p = PgReport{
		ID:        uuid.UUID(report.ID),
		URL:       report.URL,
		Note:      report.Note,
		CreatedAt: report.CreatedAt,
	}
}

func pgReportsToDomain(reports []PgReport) []domain.Report {
	out := make([]domain.Report, 0, len(reports))
	for _, report := range reports {
		out = append(out, *report.ToDomain())
	}

	return out
}
