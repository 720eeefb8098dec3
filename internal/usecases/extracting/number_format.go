package extracting

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NumberFormat descreve como os números aparecem no texto do cupom. Isolar o
// formato permite reaproveitar a gramática para outras localidades.
type NumberFormat struct {
	DecimalSeparator   string
	ThousandsSeparator string
}

// BrazilianFormat é o formato dos cupons fiscais brasileiros (1.234,56)
var BrazilianFormat = NumberFormat{
	DecimalSeparator:   ",",
	ThousandsSeparator: ".",
}

func NewNumberFormat(decimalSeparator, thousandsSeparator string) (NumberFormat, error) {
	if decimalSeparator == "" {
		return NumberFormat{}, fmt.Errorf("separador decimal não pode ser vazio")
	}
	if decimalSeparator == thousandsSeparator {
		return NumberFormat{}, fmt.Errorf("separadores decimal e de milhar devem ser diferentes (%q)", decimalSeparator)
	}
	return NumberFormat{
		DecimalSeparator:   decimalSeparator,
		ThousandsSeparator: thousandsSeparator,
	}, nil
}

// Parse converte o número para decimal. O separador de milhar só é removido
// quando o separador decimal está presente, de modo que "1.500" em um cupom
// sem vírgula continua sendo lido como 1.5 e não como 1500.
func (f NumberFormat) Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("número vazio")
	}

	if f.ThousandsSeparator != "" && strings.Contains(s, f.DecimalSeparator) {
		s = strings.ReplaceAll(s, f.ThousandsSeparator, "")
	}
	if f.DecimalSeparator != "." {
		s = strings.ReplaceAll(s, f.DecimalSeparator, ".")
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("número inválido %q: %w", raw, err)
	}

	return value, nil
}
