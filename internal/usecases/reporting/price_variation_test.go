package reporting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

func TestAnalyzePriceVariation(t *testing.T) {
	h1 := newHeader("PUR001", bomPreco, "2024-01-10", "100", "0")
	h2 := newHeader("PUR002", bomPreco, "2024-02-10", "100", "0")
	h3 := newHeader("PUR003", atacadao, "2024-03-10", "100", "0")

	rows := []*domain.PurchaseItemRow{
		newRow(h1, bomPreco, "789", "Café", "1", "10", "10"),
		newRow(h2, bomPreco, "789", "Café", "1", "12", "12"),
		newRow(h3, atacadao, "789", "Café", "1", "8", "8"),
		newRow(h1, bomPreco, "555", "Açúcar", "1", "4.50", "4.50"),
		newRow(h1, bomPreco, domain.ManualItemCode, "Banana", "1", "5", "5"),
		newRow(h2, bomPreco, domain.ManualItemCode, "Banana", "1", "6", "6"),
		newRow(h1, bomPreco, "111", "Sal", "1", "2", "2"),
		newRow(h2, bomPreco, "111", "Sal", "1", "2", "2"),
	}

	variation := AnalyzePriceVariation(rows, 10)

	require.Len(t, variation.LargestIncreases, 2)
	assert.Equal(t, "Café", variation.LargestIncreases[0].Description)
	assert.Equal(t, 20.0, variation.LargestIncreases[0].IncreasePct)
	assert.Equal(t, 3, variation.LargestIncreases[0].Count)
	assert.Equal(t, "10.00", variation.LargestIncreases[0].Mean.StringFixed(2))
	assert.Equal(t, "12", variation.LargestIncreases[0].Max.String())
	assert.Equal(t, "8", variation.LargestIncreases[0].Min.String())
	assert.Equal(t, "Banana", variation.LargestIncreases[1].Description)
	assert.Equal(t, 9.09, variation.LargestIncreases[1].IncreasePct)

	require.Len(t, variation.LargestDecreases, 2)
	assert.Equal(t, "Café", variation.LargestDecreases[0].Description)
	assert.Equal(t, -20.0, variation.LargestDecreases[0].DecreasePct)
	assert.Equal(t, "Banana", variation.LargestDecreases[1].Description)
	assert.Equal(t, -9.09, variation.LargestDecreases[1].DecreasePct)

	require.Len(t, variation.AveragePrices, 4)
	assert.Equal(t, "Açúcar", variation.AveragePrices[0].Description)
	assert.Equal(t, 1, variation.AveragePrices[0].Count)
	assert.Equal(t, "Banana", variation.AveragePrices[1].Description)
	assert.Empty(t, variation.AveragePrices[1].Code)
	assert.Equal(t, "5.50", variation.AveragePrices[1].Mean.StringFixed(2))
	assert.Equal(t, "Café", variation.AveragePrices[2].Description)
	assert.Equal(t, "Sal", variation.AveragePrices[3].Description)
}

func TestAnalyzePriceVariation_SameDescriptionDifferentCodes(t *testing.T) {
	h1 := newHeader("PUR001", bomPreco, "2024-01-10", "100", "0")
	rows := []*domain.PurchaseItemRow{
		newRow(h1, bomPreco, "1", "Leite", "1", "4", "4"),
		newRow(h1, bomPreco, "2", "Leite", "1", "6", "6"),
	}

	variation := AnalyzePriceVariation(rows, 10)

	assert.Len(t, variation.AveragePrices, 2)
	assert.Empty(t, variation.LargestIncreases)
	assert.Empty(t, variation.LargestDecreases)
}

func TestAnalyzePriceVariation_TopN(t *testing.T) {
	h1 := newHeader("PUR001", bomPreco, "2024-01-10", "100", "0")
	h2 := newHeader("PUR002", bomPreco, "2024-02-10", "100", "0")

	rows := make([]*domain.PurchaseItemRow, 0)
	for i := 1; i <= 12; i++ {
		description := fmt.Sprintf("Produto %02d", i)
		rows = append(rows,
			newRow(h1, bomPreco, fmt.Sprint(i), description, "1", "10", "10"),
			newRow(h2, bomPreco, fmt.Sprint(i), description, "1", fmt.Sprint(10+i), fmt.Sprint(10+i)),
		)
	}

	variation := AnalyzePriceVariation(rows, 10)

	require.Len(t, variation.LargestIncreases, 10)
	assert.Equal(t, "Produto 12", variation.LargestIncreases[0].Description)
	assert.Equal(t, "Produto 03", variation.LargestIncreases[9].Description)
	assert.Len(t, variation.LargestDecreases, 10)
	assert.Len(t, variation.AveragePrices, 12)
}

func TestAnalyzePriceVariation_Empty(t *testing.T) {
	variation := AnalyzePriceVariation(nil, 10)

	assert.NotNil(t, variation.LargestIncreases)
	assert.Empty(t, variation.LargestIncreases)
	assert.Empty(t, variation.LargestDecreases)
	assert.Empty(t, variation.AveragePrices)
}
