package reporting

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Segunda",
	time.Tuesday:   "Terça",
	time.Wednesday: "Quarta",
	time.Thursday:  "Quinta",
	time.Friday:    "Sexta",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// weekdayOrder começa na segunda-feira
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

func buildDashboard(
	headers []*domain.PurchaseHeader,
	rows []*domain.PurchaseItemRow,
	marketNames map[string]string,
	topN int,
) domain.DashboardStats {
	return domain.DashboardStats{
		SpendByMarket:      spendByMarket(headers, marketNames),
		DailySpend:         dailySpend(headers),
		SpendByWeekday:     spendByWeekday(rows),
		TopItemsBySpend:    topItems(rows, topN, func(item domain.LineItem) decimal.Decimal { return item.TotalPrice }),
		TopItemsByQuantity: topItems(rows, topN, func(item domain.LineItem) decimal.Decimal { return item.Quantity }),
	}
}

func spendByMarket(headers []*domain.PurchaseHeader, marketNames map[string]string) []domain.MarketSpend {
	byMarket := make(map[string]*domain.MarketSpend)
	for _, header := range headers {
		name, ok := marketNames[header.MarketID]
		if !ok {
			name = header.MarketID
		}
		spend, ok := byMarket[name]
		if !ok {
			spend = &domain.MarketSpend{Market: name, Total: decimal.Zero}
			byMarket[name] = spend
		}
		spend.Total = spend.Total.Add(header.NetTotal)
		spend.Purchases++
	}

	result := make([]domain.MarketSpend, 0, len(byMarket))
	for _, spend := range byMarket {
		spend.Average = spend.Total.Div(decimal.NewFromInt(int64(spend.Purchases))).Round(2)
		result = append(result, *spend)
	}
	slices.SortFunc(result, func(a, b domain.MarketSpend) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.Market, b.Market)
	})
	return result
}

func dailySpend(headers []*domain.PurchaseHeader) []domain.DailySpend {
	byDay := make(map[time.Time]decimal.Decimal)
	for _, header := range headers {
		day := domain.TruncateDate(header.PurchaseDate)
		byDay[day] = byDay[day].Add(header.NetTotal)
	}

	result := make([]domain.DailySpend, 0, len(byDay))
	for day, total := range byDay {
		result = append(result, domain.DailySpend{Date: day, Total: total})
	}
	slices.SortFunc(result, func(a, b domain.DailySpend) int {
		return a.Date.Compare(b.Date)
	})
	return result
}

func spendByWeekday(rows []*domain.PurchaseItemRow) []domain.WeekdaySpend {
	byWeekday := make(map[time.Weekday]decimal.Decimal)
	for _, row := range rows {
		weekday := row.Header.PurchaseDate.Weekday()
		byWeekday[weekday] = byWeekday[weekday].Add(row.Item.TotalPrice)
	}

	result := make([]domain.WeekdaySpend, 0, len(byWeekday))
	for _, weekday := range weekdayOrder {
		total, ok := byWeekday[weekday]
		if !ok {
			continue
		}
		result = append(result, domain.WeekdaySpend{
			Weekday: weekday,
			Label:   weekdayLabels[weekday],
			Total:   total,
		})
	}
	return result
}

// topItems soma value por descrição e devolve os topN maiores
func topItems(rows []*domain.PurchaseItemRow, topN int, value func(domain.LineItem) decimal.Decimal) []domain.ItemRanking {
	byDescription := make(map[string]decimal.Decimal)
	for _, row := range rows {
		description := strings.TrimSpace(row.Item.Description)
		byDescription[description] = byDescription[description].Add(value(row.Item))
	}

	result := make([]domain.ItemRanking, 0, len(byDescription))
	for description, total := range byDescription {
		result = append(result, domain.ItemRanking{Description: description, Value: total})
	}
	slices.SortFunc(result, func(a, b domain.ItemRanking) int {
		if c := b.Value.Cmp(a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Description, b.Description)
	})

	if topN > 0 && len(result) > topN {
		result = result[:topN]
	}
	return result
}
