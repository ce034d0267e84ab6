package services

import (
	"context"
	"time"

	"github.com/mpalomar/budgeteer/internal/core/domain"
	portsrepo "github.com/mpalomar/budgeteer/internal/core/ports/repositories"
	portssvc "github.com/mpalomar/budgeteer/internal/core/ports/services"
	"github.com/mpalomar/budgeteer/internal/dto"
	"github.com/shopspring/decimal"
)

// reportServiceImpl implements the ReportSvcFacade interface.
type reportServiceImpl struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportService creates a new reporting service.
func NewReportService(repo portsrepo.ReportingRepository) portssvc.ReportSvcFacade {
	return &reportServiceImpl{reportingRepo: repo}
}

var _ portssvc.ReportSvcFacade = (*reportServiceImpl)(nil)

func (s *reportServiceImpl) MonthlySummary(ctx context.Context, year int, month time.Month) (*dto.MonthlySummaryResponse, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC) // last day of month

	totals, err := s.reportingRepo.CategoryTotals(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate category totals")
		return nil, err
	}

	resp := &dto.MonthlySummaryResponse{
		Year:         year,
		Month:        int(month),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Categories:   make([]dto.CategoryTotalResponse, 0, len(totals)),
	}
	for _, t := range totals {
		switch t.Kind {
		case domain.Income:
			resp.TotalIncome = resp.TotalIncome.Add(t.Total)
		case domain.Expense:
			resp.TotalExpense = resp.TotalExpense.Add(t.Total)
		}
		resp.Categories = append(resp.Categories, dto.CategoryTotalResponse{
			Kind:     t.Kind,
			Category: t.Category,
			Total:    t.Total,
		})
	}
	resp.Net = resp.TotalIncome.Sub(resp.TotalExpense)
	return resp, nil
}

func (s *reportServiceImpl) Projection(ctx context.Context, from time.Time, months int) (*dto.ProjectionResponse, error) {
	start := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(from.Year(), from.Month()+time.Month(months), 0, 0, 0, 0, 0, time.UTC)

	rows, err := s.reportingRepo.MonthlyNetTotals(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate monthly totals")
		return nil, err
	}

	byMonth := make(map[[2]int]domain.MonthTotal, len(rows))
	for _, r := range rows {
		byMonth[[2]int{r.Year, int(r.Month)}] = r
	}

	// Every month appears in the view, including those without activity.
	resp := &dto.ProjectionResponse{Months: make([]dto.ProjectionMonthResponse, 0, months)}
	running := decimal.Zero
	cursor := start
	for i := 0; i < months; i++ {
		row := domain.MonthTotal{
			Year:    cursor.Year(),
			Month:   cursor.Month(),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		if found, ok := byMonth[[2]int{cursor.Year(), int(cursor.Month())}]; ok {
			row = found
		}
		running = running.Add(row.Net())
		resp.Months = append(resp.Months, dto.ProjectionMonthResponse{
			Year:           row.Year,
			Month:          int(row.Month),
			Income:         row.Income,
			Expense:        row.Expense,
			Net:            row.Net(),
			RunningBalance: running,
		})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return resp, nil
}
