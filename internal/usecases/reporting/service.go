package reporting

//go:generate mockgen -source=service.go -destination=mocks/reporting_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gsproject/grocery-spending-api/infrastructure/repository"
	"github.com/gsproject/grocery-spending-api/internal/domain"
)

type Reporter interface {
	GetPeriodReport(ctx context.Context, filters domain.ReportFilters) (*domain.PeriodReport, error)
	GetMonthlySummary(ctx context.Context, period string) (*domain.MonthlySummary, error)
	SnapshotMonth(ctx context.Context, month time.Time) (*domain.MonthlySummary, error)
}

type Service struct {
	marketRepo   repository.MarketRepository
	purchaseRepo repository.PurchaseRepository
	summaryRepo  repository.MonthlySummaryRepository
	opts         Options
}

func NewService(
	marketRepo repository.MarketRepository,
	purchaseRepo repository.PurchaseRepository,
	summaryRepo repository.MonthlySummaryRepository,
	opts Options,
) *Service {
	if opts.TopN <= 0 {
		opts.TopN = DefaultOptions.TopN
	}
	if opts.ProjectionMonths <= 0 {
		opts.ProjectionMonths = DefaultOptions.ProjectionMonths
	}

	return &Service{
		marketRepo:   marketRepo,
		purchaseRepo: purchaseRepo,
		summaryRepo:  summaryRepo,
		opts:         opts,
	}
}

// GetPeriodReport valida o intervalo antes de qualquer consulta e recalcula o
// relatório a cada chamada.
func (s *Service) GetPeriodReport(ctx context.Context, filters domain.ReportFilters) (*domain.PeriodReport, error) {
	filters.StartDate = domain.TruncateDate(filters.StartDate)
	filters.EndDate = domain.TruncateDate(filters.EndDate)

	if filters.StartDate.After(filters.EndDate) {
		return nil, &domain.InvalidRangeError{Start: filters.StartDate, End: filters.EndDate}
	}

	markets, err := s.marketRepo.FindMarkets(ctx)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "find_markets", Err: err}
	}

	headers, err := s.purchaseRepo.FindHeadersInRange(ctx, filters.StartDate, filters.EndDate)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "find_headers_in_range", Err: err}
	}

	rows, err := s.purchaseRepo.FindItemsWithMarketInRange(ctx, filters.StartDate, filters.EndDate)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "find_items_with_market_in_range", Err: err}
	}

	report := Aggregate(filters, headers, rows, markets, s.opts)

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"start_date": filters.StartDate.Format(time.DateOnly),
		"end_date":   filters.EndDate.Format(time.DateOnly),
		"markets":    filters.Markets,
		"status":     report.Status,
		"items":      len(report.Items),
	}).Info("reporting: relatório do período calculado")

	return report, nil
}

// GetMonthlySummary devolve nil, nil quando o mês ainda não foi consolidado
func (s *Service) GetMonthlySummary(ctx context.Context, period string) (*domain.MonthlySummary, error) {
	if _, err := domain.ParsePeriodLabel(period); err != nil {
		return nil, domain.NewValidationError("period", period, "use o formato mm-yyyy")
	}

	summary, err := s.summaryRepo.GetByPeriod(ctx, period)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get_monthly_summary", Err: err}
	}

	return summary, nil
}

// SnapshotMonth calcula o relatório do mês civil de month, sem filtro de
// mercado, e grava o resumo.
func (s *Service) SnapshotMonth(ctx context.Context, month time.Time) (*domain.MonthlySummary, error) {
	start := monthStart(month)
	end := start.AddDate(0, 1, -1)

	report, err := s.GetPeriodReport(ctx, domain.ReportFilters{StartDate: start, EndDate: end})
	if err != nil {
		return nil, err
	}

	summary := SummaryFromReport(domain.PeriodLabel(start), report)
	if err := s.summaryRepo.SaveOrUpdate(ctx, summary); err != nil {
		return nil, &domain.PersistenceError{Op: "save_monthly_summary", Err: err}
	}

	return summary, nil
}

func SummaryFromReport(period string, report *domain.PeriodReport) *domain.MonthlySummary {
	return &domain.MonthlySummary{
		Period:     period,
		GrossTotal: report.Totals.TotalSpent,
		Discount:   report.Totals.TotalDiscount,
		NetTotal:   report.Totals.FinalValue,
		Purchases:  report.Totals.Purchases,
		Items:      report.Totals.Items,
	}
}
