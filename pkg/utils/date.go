package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate interpreta datas no formato yyyy-mm-dd. String vazia devolve nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q, use o formato aaaa-mm-dd: %w", dateStr, err)
	}

	return &date, nil
}

// FirstDayOfPreviousMonth devolve o primeiro dia do mês anterior a ref
func FirstDayOfPreviousMonth(ref time.Time) time.Time {
	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, -1, 0)
}
