package reporting

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

func exportRows() []*domain.PurchaseItemRow {
	h1 := newHeader("PUR001", bomPreco, "2024-01-10", "1255.50", "0")
	return []*domain.PurchaseItemRow{
		newRow(h1, bomPreco, "123", "Arroz 5kg", "2", "10.5", "21"),
		newRow(h1, bomPreco, "999", "TV", "1", "1234.5", "1234.5"),
	}
}

func TestWriteItemsCSV(t *testing.T) {
	tests := []struct {
		name      string
		delimiter rune
		expected  []string
	}{
		{
			name:      "Vírgula",
			delimiter: ',',
			expected: []string{
				"Data da Compra,Mercado,Cidade,Código,Descrição,Quantidade,Unidade,Valor Unitário,Valor Total",
				"2024-01-10,Bom Preço,Recife,123,Arroz 5kg,2,UN,10.50,21.00",
				"2024-01-10,Bom Preço,Recife,999,TV,1,UN,1234.50,1234.50",
			},
		},
		{
			name:      "Ponto e vírgula com números pt-BR",
			delimiter: ';',
			expected: []string{
				"Data da Compra;Mercado;Cidade;Código;Descrição;Quantidade;Unidade;Valor Unitário;Valor Total",
				"10/01/2024;Bom Preço;Recife;123;Arroz 5kg;2;UN;10,50;21,00",
				"10/01/2024;Bom Preço;Recife;999;TV;1;UN;1.234,50;1.234,50",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := WriteItemsCSV(&buf, exportRows(), tt.delimiter)

			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestWriteItemsCSV_InvalidDelimiter(t *testing.T) {
	var buf bytes.Buffer

	err := WriteItemsCSV(&buf, exportRows(), '|')

	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestWriteItemsXLSX(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteItemsXLSX(&buf, exportRows()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Itens")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ItemColumns, rows[0])
	assert.Equal(t, "Arroz 5kg", rows[1][4])
	assert.Equal(t, "Bom Preço", rows[2][1])
}

func TestExportFileName(t *testing.T) {
	filters := domain.ReportFilters{StartDate: date("2024-01-01"), EndDate: date("2024-01-31")}

	assert.Equal(t, "compras_2024-01-01_2024-01-31.csv", ExportFileName(filters, "csv"))
	assert.Equal(t, "compras_2024-01-01_2024-01-31.xlsx", ExportFileName(filters, ".xlsx"))
}
