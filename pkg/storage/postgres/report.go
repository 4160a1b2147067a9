package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"bangsafe/pkg/domain"
)

const (
	reportsTable = "reports"
)

// AppendReport inserts report and returns the row as stored. Timestamps come
// back at the database's microsecond precision.
func (p *PgSQL) AppendReport(ctx context.Context, report domain.Report) (*domain.Report, error) {
	var row PgReport
	row.FromDomain(report)

	var result PgReport
	if _, err := p.Builder.Insert(reportsTable).
		Rows(row).
		Returning(&PgReport{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store report into pg: %w", err)
	}

	return result.ToDomain(), nil
}

// LatestReports returns at most limit reports ordered by seq DESC.
func (p *PgSQL) LatestReports(ctx context.Context, limit uint) ([]domain.Report, error) {
	if limit == 0 {
		return []domain.Report{}, nil
	}

	var rows []PgReport
	if err := p.Builder.From(reportsTable).
		Order(goqu.I("seq").Desc()).
		Limit(limit).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch latest reports from pg: %w", err)
	}

	return pgReportsToDomain(rows), nil
}
