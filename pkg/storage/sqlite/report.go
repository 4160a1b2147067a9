package sqlite

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"bangsafe/pkg/domain"
)

const (
	reportsTable = "reports"
)

// AppendReport inserts report as the newest row of the reports table.
func (s *SQLite) AppendReport(ctx context.Context, report domain.Report) (*domain.Report, error) {
	var row SQLiteReport
	row.FromDomain(report)

	if _, err := s.Builder.Insert(reportsTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not store report into sqlite: %w", err)
	}

	return &report, nil
}

// LatestReports returns at most limit reports ordered by insertion, newest first.
func (s *SQLite) LatestReports(ctx context.Context, limit uint) ([]domain.Report, error) {
	if limit == 0 {
		return []domain.Report{}, nil
	}

	var rows []SQLiteReport
	if err := s.Builder.From(reportsTable).
		Order(goqu.I("seq").Desc()).
		Limit(limit).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch latest reports from sqlite: %w", err)
	}

	return liteReportsToDomain(rows)
}
