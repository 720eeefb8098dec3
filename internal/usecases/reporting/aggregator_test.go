package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

func TestAggregate_Totals(t *testing.T) {
	headers, rows := twoPurchases()
	markets := []*domain.Market{&bomPreco, &atacadao}

	tests := []struct {
		name             string
		markets          []string
		expectedStatus   domain.ReportStatus
		expectedSpent    string
		expectedDiscount string
		expectedFinal    string
		expectedItems    int
	}{
		{
			name:             "Sem filtro de mercado",
			markets:          nil,
			expectedStatus:   domain.ReportStatusOK,
			expectedSpent:    "30.00",
			expectedDiscount: "5.00",
			expectedFinal:    "25.00",
			expectedItems:    3,
		},
		{
			name:             "Ambos os mercados selecionados",
			markets:          []string{"Bom Preço", "Atacadão"},
			expectedStatus:   domain.ReportStatusOK,
			expectedSpent:    "30.00",
			expectedDiscount: "5.00",
			expectedFinal:    "25.00",
			expectedItems:    3,
		},
		{
			name:             "Compra com desconto excluída pelo filtro",
			markets:          []string{"Atacadão"},
			expectedStatus:   domain.ReportStatusOK,
			expectedSpent:    "10.00",
			expectedDiscount: "0.00",
			expectedFinal:    "10.00",
			expectedItems:    1,
		},
		{
			name:             "Desconto contado uma vez por compra",
			markets:          []string{"Bom Preço"},
			expectedStatus:   domain.ReportStatusOK,
			expectedSpent:    "20.00",
			expectedDiscount: "5.00",
			expectedFinal:    "15.00",
			expectedItems:    2,
		},
		{
			name:             "Nenhum mercado selecionado",
			markets:          []string{},
			expectedStatus:   domain.ReportStatusNoSelection,
			expectedSpent:    "0.00",
			expectedDiscount: "0.00",
			expectedFinal:    "0.00",
		},
		{
			name:             "Mercado selecionado sem compras",
			markets:          []string{"Mercado Inexistente"},
			expectedStatus:   domain.ReportStatusNoDataForSelection,
			expectedSpent:    "0.00",
			expectedDiscount: "0.00",
			expectedFinal:    "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := domain.ReportFilters{
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-02-29"),
				Markets:   tt.markets,
			}

			report := Aggregate(filters, headers, rows, markets, DefaultOptions)

			assert.Equal(t, tt.expectedStatus, report.Status)
			assert.Equal(t, tt.expectedSpent, report.Totals.TotalSpent.StringFixed(2))
			assert.Equal(t, tt.expectedDiscount, report.Totals.TotalDiscount.StringFixed(2))
			assert.Equal(t, tt.expectedFinal, report.Totals.FinalValue.StringFixed(2))
			assert.Len(t, report.Items, tt.expectedItems)
			assert.Equal(t, []string{"Atacadão", "Bom Preço"}, report.AvailableMarkets)
		})
	}
}

func TestAggregate_NoData(t *testing.T) {
	filters := domain.ReportFilters{StartDate: date("2024-01-01"), EndDate: date("2024-01-31")}

	report := Aggregate(filters, nil, nil, []*domain.Market{&bomPreco}, DefaultOptions)

	assert.Equal(t, domain.ReportStatusNoData, report.Status)
	assert.Empty(t, report.Items)
	assert.Empty(t, report.AvailableMarkets)
	assert.Nil(t, report.Trend)
	assert.Equal(t, domain.TrendStatusInsufficientData, report.TrendStatus)
}

func TestAggregate_MonthlyAndDashboard(t *testing.T) {
	headers, rows := twoPurchases()
	filters := domain.ReportFilters{StartDate: date("2024-01-01"), EndDate: date("2024-02-29")}

	report := Aggregate(filters, headers, rows, []*domain.Market{&bomPreco, &atacadao}, DefaultOptions)

	require.Len(t, report.MonthlySpend, 2)
	assert.Equal(t, "01-2024", report.MonthlySpend[0].Label)
	assert.Equal(t, "15.00", report.MonthlySpend[0].Total.StringFixed(2))
	assert.Equal(t, "02-2024", report.MonthlySpend[1].Label)
	assert.Equal(t, "10.00", report.MonthlySpend[1].Total.StringFixed(2))
	assert.Nil(t, report.MonthlyAverage)

	assert.Equal(t, domain.TrendStatusOK, report.TrendStatus)
	require.NotNil(t, report.Trend)
	assert.Len(t, report.Trend.Points, DefaultOptions.ProjectionMonths)

	assert.Equal(t, 2, report.Totals.Purchases)
	assert.Equal(t, 3, report.Totals.Items)
	assert.Equal(t, "12.50", report.Totals.AverageTicket.StringFixed(2))
	assert.Equal(t, "30.00", report.Totals.GrossTotal.StringFixed(2))
	assert.Equal(t, "25.00", report.Totals.PaidTotal.StringFixed(2))

	dashboard := report.Dashboard
	require.Len(t, dashboard.SpendByMarket, 2)
	assert.Equal(t, "Bom Preço", dashboard.SpendByMarket[0].Market)
	assert.Equal(t, "15.00", dashboard.SpendByMarket[0].Total.StringFixed(2))
	assert.Equal(t, 1, dashboard.SpendByMarket[0].Purchases)

	require.Len(t, dashboard.DailySpend, 2)
	assert.Equal(t, date("2024-01-10"), dashboard.DailySpend[0].Date)

	require.Len(t, dashboard.SpendByWeekday, 2)
	assert.Equal(t, time.Monday, dashboard.SpendByWeekday[0].Weekday)
	assert.Equal(t, "Segunda", dashboard.SpendByWeekday[0].Label)
	assert.Equal(t, "10.00", dashboard.SpendByWeekday[0].Total.StringFixed(2))
	assert.Equal(t, "Quarta", dashboard.SpendByWeekday[1].Label)
	assert.Equal(t, "20.00", dashboard.SpendByWeekday[1].Total.StringFixed(2))

	require.Len(t, dashboard.TopItemsBySpend, 3)
	assert.Equal(t, "Arroz", dashboard.TopItemsBySpend[0].Description)
	require.Len(t, dashboard.TopItemsByQuantity, 3)
	assert.Equal(t, "Feijão", dashboard.TopItemsByQuantity[0].Description)
	assert.Equal(t, "2", dashboard.TopItemsByQuantity[0].Value.String())
}

func TestAggregate_MonthlyAverageWithThreeMonths(t *testing.T) {
	h1 := newHeader("PUR001", bomPreco, "2024-01-10", "100", "0")
	h2 := newHeader("PUR002", bomPreco, "2024-02-10", "200", "0")
	h3 := newHeader("PUR003", bomPreco, "2024-03-10", "300", "0")
	rows := []*domain.PurchaseItemRow{
		newRow(h1, bomPreco, "1", "Carne", "1", "100", "100"),
		newRow(h2, bomPreco, "1", "Carne", "1", "200", "200"),
		newRow(h3, bomPreco, "1", "Carne", "1", "300", "300"),
	}
	filters := domain.ReportFilters{StartDate: date("2024-01-01"), EndDate: date("2024-03-31")}

	report := Aggregate(filters, []*domain.PurchaseHeader{h1, h2, h3}, rows, []*domain.Market{&bomPreco}, DefaultOptions)

	require.NotNil(t, report.MonthlyAverage)
	assert.Equal(t, "200.00", report.MonthlyAverage.StringFixed(2))
	require.NotNil(t, report.Trend)
	assert.Equal(t, "400.00", report.Trend.Points[0].Value.StringFixed(2))
}

func TestAggregate_DoesNotMutateInputs(t *testing.T) {
	headers, rows := twoPurchases()
	filters := domain.ReportFilters{
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-02-29"),
		Markets:   []string{"Atacadão"},
	}

	first := Aggregate(filters, headers, rows, []*domain.Market{&bomPreco, &atacadao}, DefaultOptions)
	second := Aggregate(filters, headers, rows, []*domain.Market{&bomPreco, &atacadao}, DefaultOptions)

	assert.Len(t, headers, 2)
	assert.Len(t, rows, 3)
	assert.Equal(t, first.Totals, second.Totals)
}
