package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gsproject/grocery-spending-api/internal/domain"
	reportingmocks "github.com/gsproject/grocery-spending-api/internal/usecases/reporting/mocks"
	"github.com/gsproject/grocery-spending-api/pkg/apiErrors"
)

var (
	march1  = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	march31 = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
)

func okReport(filters domain.ReportFilters) *domain.PeriodReport {
	return &domain.PeriodReport{
		Filters: filters,
		Status:  domain.ReportStatusOK,
		Items: []*domain.PurchaseItemRow{{
			Item: domain.LineItem{
				Code: "7891000100103", Description: "ARROZ TIPO 1",
				Quantity: decimal.NewFromInt(2), Unit: "UN",
				UnitPrice: decimal.RequireFromString("5.50"), TotalPrice: decimal.RequireFromString("11.00"),
			},
			Header: domain.PurchaseHeader{ID: "H1", MarketID: "MKT001", PurchaseDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
			Market: domain.Market{ID: "MKT001", Name: "Bom Preço", City: "Recife"},
		}},
	}
}

func TestGetPeriodReport_MarketFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := reportingmocks.NewMockReporter(ctrl)
	routes := Reports(service, ';')

	tests := []struct {
		name            string
		query           string
		expectedMarkets []string
	}{
		{name: "Sem parâmetro markets", query: "", expectedMarkets: nil},
		{name: "markets vazio", query: "&markets=", expectedMarkets: []string{}},
		{name: "Lista de mercados", query: "&markets=Bom%20Pre%C3%A7o,%20Atacad%C3%A3o", expectedMarkets: []string{"Bom Preço", "Atacadão"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := domain.ReportFilters{StartDate: march1, EndDate: march31, Markets: tt.expectedMarkets}
			service.EXPECT().GetPeriodReport(gomock.Any(), expected).Return(okReport(expected), nil)

			rec := serve(routes, http.MethodGet, "/v1/reports/period?start_date=2024-03-01&end_date=2024-03-31"+tt.query, nil)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status":"ok"`)
		})
	}
}

func TestGetPeriodReport_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := reportingmocks.NewMockReporter(ctrl)
	routes := Reports(service, ';')

	t.Run("Intervalo invertido", func(t *testing.T) {
		service.EXPECT().GetPeriodReport(gomock.Any(), gomock.Any()).
			Return(nil, &domain.InvalidRangeError{Start: march31, End: march1})

		rec := serve(routes, http.MethodGet, "/v1/reports/period?start_date=2024-03-31&end_date=2024-03-01", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidDateRange, decodeAPIError(t, rec).Code)
	})

	t.Run("Data ausente", func(t *testing.T) {
		rec := serve(routes, http.MethodGet, "/v1/reports/period?end_date=2024-03-01", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "start_date", decodeAPIError(t, rec).Details.(map[string]any)["field"])
	})

	t.Run("Falha do banco", func(t *testing.T) {
		service.EXPECT().GetPeriodReport(gomock.Any(), gomock.Any()).
			Return(nil, &domain.PersistenceError{Op: "find_headers_in_range"})

		rec := serve(routes, http.MethodGet, "/v1/reports/period?start_date=2024-03-01&end_date=2024-03-31", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
	})
}

func TestExportPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := reportingmocks.NewMockReporter(ctrl)
	routes := Reports(service, ';')
	filters := domain.ReportFilters{StartDate: march1, EndDate: march31}

	t.Run("CSV", func(t *testing.T) {
		service.EXPECT().GetPeriodReport(gomock.Any(), filters).Return(okReport(filters), nil)

		rec := serve(routes, http.MethodGet, "/v1/reports/period/export.csv?start_date=2024-03-01&end_date=2024-03-31", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename="compras_2024-03-01_2024-03-31.csv"`, rec.Header().Get("Content-Disposition"))
		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		assert.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "Data da Compra;Mercado;Cidade"))
		assert.Contains(t, lines[1], "ARROZ TIPO 1")
	})

	t.Run("XLSX", func(t *testing.T) {
		service.EXPECT().GetPeriodReport(gomock.Any(), filters).Return(okReport(filters), nil)

		rec := serve(routes, http.MethodGet, "/v1/reports/period/export.xlsx?start_date=2024-03-01&end_date=2024-03-31", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
	})

	t.Run("Sem dados", func(t *testing.T) {
		service.EXPECT().GetPeriodReport(gomock.Any(), filters).
			Return(&domain.PeriodReport{Filters: filters, Status: domain.ReportStatusNoData}, nil)

		rec := serve(routes, http.MethodGet, "/v1/reports/period/export.csv?start_date=2024-03-01&end_date=2024-03-31", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetMonthlySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := reportingmocks.NewMockReporter(ctrl)
	routes := Reports(service, ';')

	service.EXPECT().GetMonthlySummary(gomock.Any(), "02-2024").
		Return(&domain.MonthlySummary{Period: "02-2024", NetTotal: decimal.RequireFromString("320.10"), Purchases: 4}, nil)
	rec := serve(routes, http.MethodGet, "/v1/summaries/02-2024", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"period":"02-2024"`)

	service.EXPECT().GetMonthlySummary(gomock.Any(), "01-2020").Return(nil, nil)
	rec = serve(routes, http.MethodGet, "/v1/summaries/01-2020", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	service.EXPECT().GetMonthlySummary(gomock.Any(), "2024-02").
		Return(nil, domain.NewValidationError("period", "2024-02", "use o formato mm-yyyy"))
	rec = serve(routes, http.MethodGet, "/v1/summaries/2024-02", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
