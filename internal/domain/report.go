package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportStatus string

const (
	ReportStatusOK                 ReportStatus = "ok"
	ReportStatusNoData             ReportStatus = "no_data"
	ReportStatusNoSelection        ReportStatus = "no_selection"
	ReportStatusNoDataForSelection ReportStatus = "no_data_for_selection"
)

type TrendStatus string

const (
	TrendStatusOK               TrendStatus = "ok"
	TrendStatusInsufficientData TrendStatus = "insufficient_data"
)

// ReportFilters define o período (inclusivo) e o filtro opcional de mercados.
// Markets nil significa "sem filtro"; uma lista vazia significa "nenhum
// mercado selecionado".
type ReportFilters struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Markets   []string  `json:"markets"`
}

// HasMarketFilter informa se o chamador restringiu os mercados
func (f ReportFilters) HasMarketFilter() bool {
	return f.Markets != nil
}

// PeriodReport é recalculado a cada consulta e nunca é persistido
type PeriodReport struct {
	Filters          ReportFilters      `json:"filters"`
	Status           ReportStatus       `json:"status"`
	AvailableMarkets []string           `json:"available_markets"`
	Items            []*PurchaseItemRow `json:"items"`
	Totals           SpendTotals        `json:"totals"`
	MonthlySpend     []MonthlySpend     `json:"monthly_spend"`
	MonthlyAverage   *decimal.Decimal   `json:"monthly_average,omitempty"`
	TrendStatus      TrendStatus        `json:"trend_status"`
	Trend            *TrendProjection   `json:"trend,omitempty"`
	PriceVariation   PriceVariation     `json:"price_variation"`
	Dashboard        DashboardStats     `json:"dashboard"`
}

// SpendTotals reconcilia valores de itens com os descontos do cabeçalho
type SpendTotals struct {
	TotalSpent    decimal.Decimal `json:"total_gasto"`
	TotalDiscount decimal.Decimal `json:"total_desconto"`
	FinalValue    decimal.Decimal `json:"valor_final"`
	Purchases     int             `json:"purchases"`
	Items         int             `json:"items"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	GrossTotal    decimal.Decimal `json:"gross_total"`
	PaidTotal     decimal.Decimal `json:"paid_total"`
}

type MonthlySpend struct {
	Month time.Time       `json:"month"`
	Label string          `json:"label"` // Formato mm-yyyy
	Total decimal.Decimal `json:"total"`
}

type TrendProjection struct {
	Slope     float64      `json:"slope"`
	Intercept float64      `json:"intercept"`
	Points    []TrendPoint `json:"points"`
}

type TrendPoint struct {
	Index int             `json:"index"`
	Month time.Time       `json:"month"`
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// ItemPriceStats resume o histórico de preço unitário de um item.
// Os percentuais são relativos à média.
type ItemPriceStats struct {
	Code        string          `json:"code,omitempty"`
	Description string          `json:"description"`
	Mean        decimal.Decimal `json:"mean"`
	Max         decimal.Decimal `json:"max"`
	Min         decimal.Decimal `json:"min"`
	Count       int             `json:"count"`
	IncreasePct float64         `json:"increase_pct"`
	DecreasePct float64         `json:"decrease_pct"`
}

type PriceVariation struct {
	LargestIncreases []ItemPriceStats `json:"largest_increases"`
	LargestDecreases []ItemPriceStats `json:"largest_decreases"`
	AveragePrices    []ItemPriceStats `json:"average_prices"`
}

type DashboardStats struct {
	SpendByMarket      []MarketSpend  `json:"spend_by_market"`
	DailySpend         []DailySpend   `json:"daily_spend"`
	SpendByWeekday     []WeekdaySpend `json:"spend_by_weekday"`
	TopItemsBySpend    []ItemRanking  `json:"top_items_by_spend"`
	TopItemsByQuantity []ItemRanking  `json:"top_items_by_quantity"`
}

type MarketSpend struct {
	Market    string          `json:"market"`
	Total     decimal.Decimal `json:"total"`
	Average   decimal.Decimal `json:"average"`
	Purchases int             `json:"purchases"`
}

type DailySpend struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

type WeekdaySpend struct {
	Weekday time.Weekday    `json:"weekday"`
	Label   string          `json:"label"`
	Total   decimal.Decimal `json:"total"`
}

type ItemRanking struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}
