package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary é a fotografia persistida do relatório de um mês fechado
type MonthlySummary struct {
	Period     string          `json:"period"` // Formato mm-yyyy (ex: 01-2024)
	GrossTotal decimal.Decimal `json:"gross_total"`
	Discount   decimal.Decimal `json:"discount"`
	NetTotal   decimal.Decimal `json:"net_total"`
	Purchases  int             `json:"purchases"`
	Items      int             `json:"items"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// PeriodLabel formata a data no padrão mm-yyyy
func PeriodLabel(t time.Time) string {
	return fmt.Sprintf("%02d-%04d", int(t.Month()), t.Year())
}

// ParsePeriodLabel interpreta um período mm-yyyy e devolve o primeiro dia do mês
func ParsePeriodLabel(period string) (time.Time, error) {
	t, err := time.Parse("01-2006", period)
	if err != nil {
		return time.Time{}, fmt.Errorf("período inválido %q, use o formato mm-yyyy: %w", period, err)
	}
	return t, nil
}
