package reporting

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

// Options controla os limites dos rankings e o horizonte da projeção
type Options struct {
	TopN             int
	ProjectionMonths int
}

var DefaultOptions = Options{
	TopN:             10,
	ProjectionMonths: 6,
}

// minMonthsForAverage é o número mínimo de meses para exibir a média mensal
const minMonthsForAverage = 3

// Aggregate monta o relatório do período a partir dos cabeçalhos e das linhas
// desnormalizadas já buscadas. É uma função pura: não guarda estado entre
// chamadas e não altera as entradas.
func Aggregate(
	filters domain.ReportFilters,
	headers []*domain.PurchaseHeader,
	rows []*domain.PurchaseItemRow,
	markets []*domain.Market,
	opts Options,
) *domain.PeriodReport {
	report := newEmptyReport(filters)

	marketNames := marketNamesByID(markets, rows)
	report.AvailableMarkets = availableMarkets(headers, marketNames)

	if len(headers) == 0 || len(rows) == 0 {
		report.Status = domain.ReportStatusNoData
		return report
	}

	if filters.HasMarketFilter() && len(filters.Markets) == 0 {
		report.Status = domain.ReportStatusNoSelection
		return report
	}

	filteredHeaders, filteredRows := applyMarketFilter(filters, headers, rows, marketNames)
	if len(filteredRows) == 0 {
		report.Status = domain.ReportStatusNoDataForSelection
		return report
	}

	report.Items = filteredRows
	report.Totals = computeTotals(filteredHeaders, filteredRows)

	report.MonthlySpend = monthlySpend(filteredHeaders)
	if len(report.MonthlySpend) >= minMonthsForAverage {
		average := monthlyAverage(report.MonthlySpend)
		report.MonthlyAverage = &average
	}

	report.Trend = ProjectTrend(report.MonthlySpend, opts.ProjectionMonths)
	if report.Trend != nil {
		report.TrendStatus = domain.TrendStatusOK
	}

	report.PriceVariation = AnalyzePriceVariation(filteredRows, opts.TopN)
	report.Dashboard = buildDashboard(filteredHeaders, filteredRows, marketNames, opts.TopN)

	return report
}

func newEmptyReport(filters domain.ReportFilters) *domain.PeriodReport {
	return &domain.PeriodReport{
		Filters:          filters,
		Status:           domain.ReportStatusOK,
		AvailableMarkets: []string{},
		Items:            []*domain.PurchaseItemRow{},
		Totals: domain.SpendTotals{
			TotalSpent:    decimal.Zero,
			TotalDiscount: decimal.Zero,
			FinalValue:    decimal.Zero,
			AverageTicket: decimal.Zero,
			GrossTotal:    decimal.Zero,
			PaidTotal:     decimal.Zero,
		},
		MonthlySpend: []domain.MonthlySpend{},
		TrendStatus:  domain.TrendStatusInsufficientData,
		PriceVariation: domain.PriceVariation{
			LargestIncreases: []domain.ItemPriceStats{},
			LargestDecreases: []domain.ItemPriceStats{},
			AveragePrices:    []domain.ItemPriceStats{},
		},
		Dashboard: domain.DashboardStats{
			SpendByMarket:      []domain.MarketSpend{},
			DailySpend:         []domain.DailySpend{},
			SpendByWeekday:     []domain.WeekdaySpend{},
			TopItemsBySpend:    []domain.ItemRanking{},
			TopItemsByQuantity: []domain.ItemRanking{},
		},
	}
}

// marketNamesByID usa o cadastro de mercados e completa com os nomes que
// vieram nas linhas desnormalizadas.
func marketNamesByID(markets []*domain.Market, rows []*domain.PurchaseItemRow) map[string]string {
	names := make(map[string]string, len(markets))
	for _, market := range markets {
		names[market.ID] = market.Name
	}
	for _, row := range rows {
		if _, ok := names[row.Header.MarketID]; !ok && row.Market.Name != "" {
			names[row.Header.MarketID] = row.Market.Name
		}
	}
	return names
}

func availableMarkets(headers []*domain.PurchaseHeader, marketNames map[string]string) []string {
	result := make([]string, 0)
	for _, header := range headers {
		name, ok := marketNames[header.MarketID]
		if !ok || slices.Contains(result, name) {
			continue
		}
		result = append(result, name)
	}
	slices.Sort(result)
	return result
}

func applyMarketFilter(
	filters domain.ReportFilters,
	headers []*domain.PurchaseHeader,
	rows []*domain.PurchaseItemRow,
	marketNames map[string]string,
) ([]*domain.PurchaseHeader, []*domain.PurchaseItemRow) {
	if !filters.HasMarketFilter() {
		return headers, rows
	}

	selected := make(map[string]struct{}, len(filters.Markets))
	for _, name := range filters.Markets {
		selected[name] = struct{}{}
	}

	filteredHeaders := make([]*domain.PurchaseHeader, 0, len(headers))
	for _, header := range headers {
		if _, ok := selected[marketNames[header.MarketID]]; ok {
			filteredHeaders = append(filteredHeaders, header)
		}
	}

	filteredRows := make([]*domain.PurchaseItemRow, 0, len(rows))
	for _, row := range rows {
		if _, ok := selected[row.Market.Name]; ok {
			filteredRows = append(filteredRows, row)
		}
	}

	return filteredHeaders, filteredRows
}

// computeTotals soma os itens e, uma única vez por compra, os descontos dos
// cabeçalhos que ainda têm itens após o filtro.
func computeTotals(headers []*domain.PurchaseHeader, rows []*domain.PurchaseItemRow) domain.SpendTotals {
	totals := domain.SpendTotals{
		TotalSpent:    decimal.Zero,
		TotalDiscount: decimal.Zero,
		AverageTicket: decimal.Zero,
		GrossTotal:    decimal.Zero,
		PaidTotal:     decimal.Zero,
		Purchases:     len(headers),
		Items:         len(rows),
	}

	counted := make(map[string]struct{})
	for _, row := range rows {
		totals.TotalSpent = totals.TotalSpent.Add(row.Item.TotalPrice)

		if _, ok := counted[row.Header.ID]; ok {
			continue
		}
		counted[row.Header.ID] = struct{}{}
		totals.TotalDiscount = totals.TotalDiscount.Add(row.Header.Discount)
	}
	totals.FinalValue = totals.TotalSpent.Sub(totals.TotalDiscount)

	for _, header := range headers {
		totals.GrossTotal = totals.GrossTotal.Add(header.GrossTotal)
		totals.PaidTotal = totals.PaidTotal.Add(header.NetTotal)
	}
	if totals.Purchases > 0 {
		totals.AverageTicket = totals.PaidTotal.Div(decimal.NewFromInt(int64(totals.Purchases))).Round(2)
	}

	return totals
}

// monthlySpend soma o net_total por mês civil, em ordem cronológica
func monthlySpend(headers []*domain.PurchaseHeader) []domain.MonthlySpend {
	byMonth := make(map[time.Time]decimal.Decimal)
	for _, header := range headers {
		month := monthStart(header.PurchaseDate)
		byMonth[month] = byMonth[month].Add(header.NetTotal)
	}

	months := make([]time.Time, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	slices.SortFunc(months, func(a, b time.Time) int {
		return a.Compare(b)
	})

	result := make([]domain.MonthlySpend, 0, len(months))
	for _, month := range months {
		result = append(result, domain.MonthlySpend{
			Month: month,
			Label: domain.PeriodLabel(month),
			Total: byMonth[month],
		})
	}
	return result
}

func monthlyAverage(points []domain.MonthlySpend) decimal.Decimal {
	sum := decimal.Zero
	for _, point := range points {
		sum = sum.Add(point.Total)
	}
	return sum.Div(decimal.NewFromInt(int64(len(points)))).Round(2)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
