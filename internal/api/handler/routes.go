package handler

import (
	"net/http"

	"github.com/gsproject/grocery-spending-api/internal/api/handler/router"
	"github.com/gsproject/grocery-spending-api/internal/usecases/extracting"
	"github.com/gsproject/grocery-spending-api/internal/usecases/markets"
	"github.com/gsproject/grocery-spending-api/internal/usecases/registering"
	"github.com/gsproject/grocery-spending-api/internal/usecases/reporting"
	"github.com/gsproject/grocery-spending-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Markets(service markets.MarketService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/markets",
			Method:  http.MethodGet,
			Handler: ListMarkets(service),
		},
		{
			Path:    "/v1/markets",
			Method:  http.MethodPost,
			Handler: CreateMarket(service),
		},
	}
}

func Receipts(service extracting.Extractor, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/receipts/extract",
			Method:      http.MethodPost,
			Handler:     ExtractReceipt(service, maxUploadBytes),
			Middlewares: []func(http.Handler) http.Handler{middleware.MaxBodySize(maxUploadBytes)},
		},
	}
}

func Purchases(service registering.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/purchases",
			Method:      http.MethodPost,
			Handler:     CreatePurchase(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MaxBodySize(1 << 20)},
		},
	}
}

func Reports(service reporting.Reporter, exportDelimiter rune) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/period",
			Method:  http.MethodGet,
			Handler: GetPeriodReport(service),
		},
		{
			Path:    "/v1/reports/period/export.csv",
			Method:  http.MethodGet,
			Handler: ExportPeriodCSV(service, exportDelimiter),
		},
		{
			Path:    "/v1/reports/period/export.xlsx",
			Method:  http.MethodGet,
			Handler: ExportPeriodXLSX(service),
		},
		{
			Path:    "/v1/summaries/:period",
			Method:  http.MethodGet,
			Handler: GetMonthlySummary(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
