package extracting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const receiptText = `SUPERMERCADO BOM PRECO LTDA
CNPJ: 00.000.000/0001-00
Arroz 5kg (Código: 123) Vl. Total
Qtde.:2 UN: UN Vl. Unit.: 10,50 21,00
Leite (Integral) 1L (Código: 456)Vl. Total
Qtde.: 3 UN: LT Vl. Unit.:4,99 14,97
Picanha Bovina (Código: 7891) Vl. Total
Qtde.:1,254 UN: KG Vl. Unit.: 1.299,90 1.630,07
Valor total R$ 1.666,04`

func TestParser_Parse(t *testing.T) {
	parser := NewParser(BrazilianFormat)

	tests := []struct {
		name     string
		text     string
		expected []ParsedItem
	}{
		{
			name: "Bloco único de item",
			text: "Arroz 5kg (Código: 123) Vl. Total\nQtde.:2 UN: UN Vl. Unit.: 10,50 21,00",
			expected: []ParsedItem{
				{Sequence: 1, Code: "123", Description: "Arroz 5kg", Unit: "UN"},
			},
		},
		{
			name: "Descrição com parênteses e espaçamento variável",
			text: "Leite (Integral) 1L (Código: 456)Vl. Total\nQtde.: 3 UN: LT Vl. Unit.:4,99 14,97",
			expected: []ParsedItem{
				{Sequence: 1, Code: "456", Description: "Leite (Integral) 1L", Unit: "LT"},
			},
		},
		{
			name: "Cupom completo em ordem de documento",
			text: receiptText,
			expected: []ParsedItem{
				{Sequence: 1, Code: "123", Description: "Arroz 5kg", Unit: "UN"},
				{Sequence: 2, Code: "456", Description: "Leite (Integral) 1L", Unit: "LT"},
				{Sequence: 3, Code: "7891", Description: "Picanha Bovina", Unit: "KG"},
			},
		},
		{
			name: "Quebra de linha CRLF",
			text: "Cafe 500g (Código: 9) Vl. Total\r\nQtde.:1 UN: UN Vl. Unit.: 18,90 18,90",
			expected: []ParsedItem{
				{Sequence: 1, Code: "9", Description: "Cafe 500g", Unit: "UN"},
			},
		},
		{
			name:     "Texto sem itens",
			text:     "CUPOM FISCAL ELETRONICO\nObrigado pela preferencia",
			expected: []ParsedItem{},
		},
		{
			name:     "Linha de quantidade ausente",
			text:     "Arroz 5kg (Código: 123) Vl. Total\nTotal: 21,00",
			expected: []ParsedItem{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := parser.Parse(tt.text)

			require.Len(t, items, len(tt.expected))
			for i, expected := range tt.expected {
				assert.Equal(t, expected.Sequence, items[i].Sequence)
				assert.Equal(t, expected.Code, items[i].Code)
				assert.Equal(t, expected.Description, items[i].Description)
				assert.Equal(t, expected.Unit, items[i].Unit)
			}
		})
	}
}

func TestParser_ParseNumbers(t *testing.T) {
	items := NewParser(BrazilianFormat).Parse(receiptText)
	require.Len(t, items, 3)

	assert.Equal(t, "2.000", items[0].Quantity.StringFixed(3))
	assert.Equal(t, "10.50", items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "21.00", items[0].TotalPrice.StringFixed(2))

	assert.Equal(t, "1.254", items[2].Quantity.StringFixed(3))
	assert.Equal(t, "1299.90", items[2].UnitPrice.StringFixed(2))
	assert.Equal(t, "1630.07", items[2].TotalPrice.StringFixed(2))

	for _, item := range items {
		lineItem := item.LineItem()
		assert.True(t, lineItem.TotalConsistent(), "item %d: %s", item.Sequence, item.Description)
	}
}

func TestParser_PreservesLiteralTotal(t *testing.T) {
	text := "Arroz 5kg (Código: 123) Vl. Total\nQtde.:2 UN: UN Vl. Unit.: 10,50 20,00"

	items := NewParser(BrazilianFormat).Parse(text)

	require.Len(t, items, 1)
	assert.Equal(t, "20.00", items[0].TotalPrice.StringFixed(2))
	item := items[0].LineItem()
	assert.Equal(t, "21.00", item.ExpectedTotal().StringFixed(2))
}

func TestParser_ToleratesBlankLineInsideItem(t *testing.T) {
	text := "Arroz 5kg (Código: 123) Vl. Total\r\n\r\n  Qtde.:2 UN: UN Vl. Unit.: 10,50 21,00"

	items := NewParser(BrazilianFormat).Parse(text)

	require.Len(t, items, 1)
	assert.Equal(t, "Arroz 5kg", items[0].Description)
	assert.Equal(t, "123", items[0].Code)
	assert.Equal(t, "21.00", items[0].TotalPrice.StringFixed(2))
}

func TestParser_SkipsUnconvertibleItems(t *testing.T) {
	text := "Feijao (Código: 1) Vl. Total\nQtde.:1,2,3 UN: UN Vl. Unit.: 8,00 8,00\n" +
		"Acucar (Código: 2) Vl. Total\nQtde.:1 UN: UN Vl. Unit.: 4,50 4,50"

	items := NewParser(BrazilianFormat).Parse(text)

	require.Len(t, items, 1)
	assert.Equal(t, "Acucar", items[0].Description)
	assert.Equal(t, 1, items[0].Sequence)
}

func TestParser_Idempotent(t *testing.T) {
	parser := NewParser(BrazilianFormat)

	assert.Equal(t, parser.Parse(receiptText), parser.Parse(receiptText))
}

func TestParser_ItemsStopsEarly(t *testing.T) {
	parser := NewParser(BrazilianFormat)

	var seen []string
	for item := range parser.Items(receiptText) {
		seen = append(seen, item.Code)
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"123", "456"}, seen)
}
