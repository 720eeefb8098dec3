package extracting

import (
	"iter"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

// itemPattern reconhece o bloco de duas linhas de um item do cupom:
//
//	Arroz 5kg (Código: 123) Vl. Total
//	Qtde.:2 UN: UN Vl. Unit.: 10,50 21,00
//
// Linhas em branco entre as duas linhas do item são toleradas. A descrição é
// preguiçosa para não cortar em parênteses que façam parte do nome.
var itemPattern = regexp.MustCompile(
	`([^\n]+?)[ \t]*\(Código:[ \t]*(\d+)[ \t]*\)[ \t]*Vl\.[ \t]*Total\s*\n` +
		`[ \t]*Qtde\.:[ \t]*([\d.,]+)[ \t]*UN:[ \t]*(\w+)[ \t]*Vl\.[ \t]*Unit\.:[ \t]*([\d.,]+)[ \t]+([\d.,]+)`,
)

// ParsedItem é um item candidato extraído do texto, antes da validação de domínio
type ParsedItem struct {
	Sequence    int             `json:"sequence"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// LineItem converte o item candidato preservando o total literal do cupom
func (p ParsedItem) LineItem() domain.LineItem {
	return domain.LineItem{
		Code:        p.Code,
		Description: p.Description,
		Quantity:    p.Quantity,
		Unit:        p.Unit,
		UnitPrice:   p.UnitPrice,
		TotalPrice:  p.TotalPrice,
	}
}

type Parser struct {
	format NumberFormat
}

func NewParser(format NumberFormat) *Parser {
	return &Parser{format: format}
}

// Items percorre o texto sob demanda, em ordem de documento, sem sobreposição.
// Blocos cujos números não puderem ser convertidos são ignorados.
func (p *Parser) Items(text string) iter.Seq[ParsedItem] {
	return func(yield func(ParsedItem) bool) {
		sequence := 0
		offset := 0

		for offset < len(text) {
			loc := itemPattern.FindStringSubmatchIndex(text[offset:])
			if loc == nil {
				return
			}

			groups := make([]string, 7)
			for g := 1; g < 7; g++ {
				groups[g] = text[offset+loc[2*g] : offset+loc[2*g+1]]
			}
			offset += loc[1]

			item, err := p.convert(groups)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"code":        groups[2],
					"description": strings.TrimSpace(groups[1]),
				}).Warn("extracting: item ignorado, valores numéricos inválidos")
				continue
			}

			sequence++
			item.Sequence = sequence
			if !yield(item) {
				return
			}
		}
	}
}

// Parse coleta todos os itens de Items
func (p *Parser) Parse(text string) []ParsedItem {
	items := make([]ParsedItem, 0)
	for item := range p.Items(text) {
		items = append(items, item)
	}
	return items
}

func (p *Parser) convert(groups []string) (ParsedItem, error) {
	quantity, err := p.format.Parse(groups[3])
	if err != nil {
		return ParsedItem{}, err
	}
	unitPrice, err := p.format.Parse(groups[5])
	if err != nil {
		return ParsedItem{}, err
	}
	totalPrice, err := p.format.Parse(groups[6])
	if err != nil {
		return ParsedItem{}, err
	}

	return ParsedItem{
		Code:        groups[2],
		Description: strings.TrimSpace(groups[1]),
		Quantity:    quantity,
		Unit:        groups[4],
		UnitPrice:   unitPrice,
		TotalPrice:  totalPrice,
	}, nil
}
