package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

// ItemColumns é a ordem fixa das colunas da exportação de itens
var ItemColumns = []string{
	"Data da Compra",
	"Mercado",
	"Cidade",
	"Código",
	"Descrição",
	"Quantidade",
	"Unidade",
	"Valor Unitário",
	"Valor Total",
}

const xlsxSheet = "Itens"

// ExportFileName monta o nome do arquivo exportado (ex: compras_2024-01-01_2024-01-31.csv)
func ExportFileName(filters domain.ReportFilters, extension string) string {
	return fmt.Sprintf("compras_%s_%s.%s",
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
		strings.TrimPrefix(extension, "."),
	)
}

// WriteItemsCSV exporta a listagem de itens. Com ';' os números saem no
// padrão brasileiro (1.234,56) para abrir direto em planilhas pt-BR.
func WriteItemsCSV(w io.Writer, rows []*domain.PurchaseItemRow, delimiter rune) error {
	if delimiter != ',' && delimiter != ';' {
		return fmt.Errorf("delimitador não suportado: %q", delimiter)
	}

	formatter := newCSVFormatter(delimiter)
	writer := csv.NewWriter(w)
	writer.Comma = delimiter

	if err := writer.Write(ItemColumns); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho do CSV: %w", err)
	}

	for _, row := range rows {
		record := []string{
			formatter.date(row.Header.PurchaseDate),
			row.Market.Name,
			row.Market.City,
			row.Item.Code,
			row.Item.Description,
			formatter.quantity(row.Item.Quantity),
			row.Item.Unit,
			formatter.money(row.Item.UnitPrice),
			formatter.money(row.Item.TotalPrice),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("erro ao escrever linha do CSV: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

type csvFormatter struct {
	printer *message.Printer
}

func newCSVFormatter(delimiter rune) csvFormatter {
	if delimiter == ';' {
		return csvFormatter{printer: message.NewPrinter(language.BrazilianPortuguese)}
	}
	return csvFormatter{}
}

func (f csvFormatter) date(t time.Time) string {
	if f.printer != nil {
		return t.Format("02/01/2006")
	}
	return t.Format(time.DateOnly)
}

func (f csvFormatter) money(d decimal.Decimal) string {
	if f.printer != nil {
		return f.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
	}
	return d.StringFixed(2)
}

func (f csvFormatter) quantity(d decimal.Decimal) string {
	if f.printer != nil {
		return strings.ReplaceAll(d.String(), ".", ",")
	}
	return d.String()
}

// WriteItemsXLSX exporta a mesma listagem em uma planilha com os valores numéricos
func WriteItemsXLSX(w io.Writer, rows []*domain.PurchaseItemRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("erro ao criar planilha: %w", err)
	}

	header := make([]interface{}, 0, len(ItemColumns))
	for _, column := range ItemColumns {
		header = append(header, column)
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho da planilha: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			row.Header.PurchaseDate.Format(time.DateOnly),
			row.Market.Name,
			row.Market.City,
			row.Item.Code,
			row.Item.Description,
			row.Item.Quantity.InexactFloat64(),
			row.Item.Unit,
			row.Item.UnitPrice.InexactFloat64(),
			row.Item.TotalPrice.InexactFloat64(),
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
			return fmt.Errorf("erro ao escrever linha %d da planilha: %w", i+1, err)
		}
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("erro ao criar estilo monetário: %w", err)
	}
	if err := f.SetColStyle(xlsxSheet, "H:I", moneyStyle); err != nil {
		return fmt.Errorf("erro ao aplicar estilo monetário: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("erro ao gerar planilha: %w", err)
	}
	return nil
}
