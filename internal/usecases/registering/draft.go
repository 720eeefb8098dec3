package registering

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

// ManualUnits são as unidades aceitas na digitação manual
var ManualUnits = []string{"UN", "KG", "LT", "G", "ML"}

// Draft acumula itens de uma compra em andamento. Pertence a uma única
// requisição: é criado no início do registro e descartado após o commit ou
// cancelamento.
type Draft struct {
	items []ItemInput
}

func NewDraft() *Draft {
	return &Draft{items: make([]ItemInput, 0)}
}

// AddManual valida e adiciona um item digitado, com código MANUAL e total
// calculado.
func (d *Draft) AddManual(description string, quantity decimal.Decimal, unit string, unitPrice decimal.Decimal) (*domain.LineItem, error) {
	in := ItemInput{
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		UnitPrice:   unitPrice,
		Manual:      true,
	}

	item, err := in.lineItem()
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return nil, validationErr.AtIndex(len(d.items) + 1)
		}
		return nil, err
	}

	total := item.TotalPrice

	d.items = append(d.items, ItemInput{
		Code:        item.Code,
		Description: item.Description,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		UnitPrice:   item.UnitPrice,
		TotalPrice:  &total,
	})

	return item, nil
}

// Add inclui um item já estruturado (ex: vindo da extração), sem recalcular o
// total. Itens com Manual ligado só são validados na montagem da compra.
func (d *Draft) Add(item ItemInput) {
	d.items = append(d.items, item)
}

// RemoveLast remove o último item e informa se havia algo a remover
func (d *Draft) RemoveLast() bool {
	if len(d.items) == 0 {
		return false
	}
	d.items = d.items[:len(d.items)-1]
	return true
}

func (d *Draft) Items() []ItemInput {
	return slices.Clone(d.items)
}

func (d *Draft) Len() int {
	return len(d.items)
}

// Total soma os totais dos itens do rascunho
func (d *Draft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.items {
		total = total.Add(item.total())
	}
	return total
}

func (d *Draft) Reset() {
	d.items = d.items[:0]
}
