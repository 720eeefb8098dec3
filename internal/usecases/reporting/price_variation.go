package reporting

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gsproject/grocery-spending-api/internal/domain"
	"github.com/gsproject/grocery-spending-api/pkg/utils"
)

var hundred = decimal.NewFromInt(100)

type priceGroup struct {
	code        string
	description string
	prices      []decimal.Decimal
}

// AnalyzePriceVariation agrupa os itens por (código, descrição) e calcula
// média, máximo e mínimo do valor unitário. Itens sem código ou digitados
// manualmente são agrupados apenas pela descrição.
func AnalyzePriceVariation(rows []*domain.PurchaseItemRow, topN int) domain.PriceVariation {
	groups := make(map[string]*priceGroup)
	order := make([]string, 0)

	for _, row := range rows {
		code := strings.TrimSpace(row.Item.Code)
		if code == domain.ManualItemCode {
			code = ""
		}
		description := strings.TrimSpace(row.Item.Description)
		key := code + "\x00" + description

		group, ok := groups[key]
		if !ok {
			group = &priceGroup{code: code, description: description}
			groups[key] = group
			order = append(order, key)
		}
		group.prices = append(group.prices, row.Item.UnitPrice)
	}

	stats := make([]domain.ItemPriceStats, 0, len(groups))
	ratios := make([][2]float64, 0, len(groups))
	for _, key := range order {
		s, increase, decrease := summarize(groups[key])
		ratios = append(ratios, [2]float64{increase, decrease})
		stats = append(stats, s)
	}

	increases := make([]int, 0)
	decreases := make([]int, 0)
	for i, s := range stats {
		if s.Count <= 1 {
			continue
		}
		if ratios[i][0] > 0 {
			increases = append(increases, i)
		}
		if ratios[i][1] < 0 {
			decreases = append(decreases, i)
		}
	}

	slices.SortStableFunc(increases, func(a, b int) int {
		if c := cmp.Compare(ratios[b][0], ratios[a][0]); c != 0 {
			return c
		}
		return strings.Compare(stats[a].Description, stats[b].Description)
	})
	slices.SortStableFunc(decreases, func(a, b int) int {
		if c := cmp.Compare(ratios[a][1], ratios[b][1]); c != 0 {
			return c
		}
		return strings.Compare(stats[a].Description, stats[b].Description)
	})

	average := slices.Clone(stats)
	slices.SortStableFunc(average, func(a, b domain.ItemPriceStats) int {
		if c := strings.Compare(a.Description, b.Description); c != 0 {
			return c
		}
		return strings.Compare(a.Code, b.Code)
	})

	return domain.PriceVariation{
		LargestIncreases: pick(stats, increases, topN),
		LargestDecreases: pick(stats, decreases, topN),
		AveragePrices:    average,
	}
}

// summarize devolve as estatísticas e as razões (max-média)/média e
// (min-média)/média sem arredondamento, usadas na ordenação.
func summarize(group *priceGroup) (domain.ItemPriceStats, float64, float64) {
	sum := decimal.Zero
	maxPrice := group.prices[0]
	minPrice := group.prices[0]
	for _, price := range group.prices {
		sum = sum.Add(price)
		maxPrice = decimal.Max(maxPrice, price)
		minPrice = decimal.Min(minPrice, price)
	}

	count := len(group.prices)
	mean := sum.Div(decimal.NewFromInt(int64(count)))

	var increase, decrease float64
	if mean.IsPositive() {
		increase = maxPrice.Sub(mean).Div(mean).Mul(hundred).InexactFloat64()
		decrease = minPrice.Sub(mean).Div(mean).Mul(hundred).InexactFloat64()
	}

	return domain.ItemPriceStats{
		Code:        group.code,
		Description: group.description,
		Mean:        mean.Round(2),
		Max:         maxPrice,
		Min:         minPrice,
		Count:       count,
		IncreasePct: utils.RoundWithTwoDecimalPlace(increase),
		DecreasePct: utils.RoundWithTwoDecimalPlace(decrease),
	}, increase, decrease
}

func pick(stats []domain.ItemPriceStats, indexes []int, topN int) []domain.ItemPriceStats {
	if topN > 0 && len(indexes) > topN {
		indexes = indexes[:topN]
	}
	result := make([]domain.ItemPriceStats, 0, len(indexes))
	for _, i := range indexes {
		result = append(result, stats[i])
	}
	return result
}
