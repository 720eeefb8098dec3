package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ManualItemCode identifica itens digitados manualmente (sem código de produto)
const ManualItemCode = "MANUAL"

// TotalTolerance é a diferença aceita entre total_price e quantity*unit_price
var TotalTolerance = decimal.New(1, -2)

type LineItem struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// NewLineItem cria um item validado. O total informado é preservado como veio,
// mesmo que divirja de quantity*unit_price.
func NewLineItem(code, description string, quantity decimal.Decimal, unit string, unitPrice, totalPrice decimal.Decimal) (*LineItem, error) {
	item := &LineItem{
		Code:        strings.TrimSpace(code),
		Description: strings.TrimSpace(description),
		Quantity:    quantity,
		Unit:        strings.TrimSpace(unit),
		UnitPrice:   unitPrice,
		TotalPrice:  totalPrice,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *LineItem) Validate() error {
	if i.Description == "" {
		return NewValidationError("description", i.Description, "a descrição é obrigatória")
	}
	if !i.Quantity.IsPositive() {
		return NewValidationError("quantity", i.Quantity.String(), "a quantidade deve ser maior que zero")
	}
	if !i.UnitPrice.IsPositive() {
		return NewValidationError("unit_price", i.UnitPrice.String(), "o valor unitário deve ser maior que zero")
	}
	if i.TotalPrice.IsNegative() {
		return NewValidationError("total_price", i.TotalPrice.String(), "o valor total não pode ser negativo")
	}
	return nil
}

// ExpectedTotal é quantity*unit_price arredondado em duas casas
func (i *LineItem) ExpectedTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice).Round(2)
}

// TotalConsistent informa se o total do item bate com quantity*unit_price
// dentro de TotalTolerance.
func (i *LineItem) TotalConsistent() bool {
	return i.TotalPrice.Sub(i.ExpectedTotal()).Abs().LessThanOrEqual(TotalTolerance)
}

type PurchaseHeader struct {
	ID           string          `json:"id"`
	MarketID     string          `json:"market_id"`
	PurchaseDate time.Time       `json:"purchase_date"`
	GrossTotal   decimal.Decimal `json:"gross_total"`
	Discount     decimal.Decimal `json:"discount"`
	NetTotal     decimal.Decimal `json:"net_total"`
	CreatedAt    time.Time       `json:"created_at,omitempty"`
}

// NewPurchaseHeader valida o desconto contra o total bruto e calcula o valor
// final pago (gross - discount).
func NewPurchaseHeader(marketID string, purchaseDate time.Time, grossTotal, discount decimal.Decimal) (*PurchaseHeader, error) {
	if marketID == "" {
		return nil, NewValidationError("market_id", marketID, "o mercado é obrigatório").Wrap(ErrMarketNotFound)
	}
	if purchaseDate.IsZero() {
		return nil, NewValidationError("purchase_date", "", "a data da compra é obrigatória")
	}
	if grossTotal.IsNegative() {
		return nil, NewValidationError("gross_total", grossTotal.String(), "o valor total não pode ser negativo")
	}
	if discount.IsNegative() {
		return nil, NewValidationError("discount", discount.String(), "o desconto não pode ser negativo")
	}
	if discount.GreaterThan(grossTotal) {
		return nil, NewValidationError("discount", discount.String(), "o desconto não pode ser maior que o valor total dos itens")
	}

	return &PurchaseHeader{
		MarketID:     marketID,
		PurchaseDate: TruncateDate(purchaseDate),
		GrossTotal:   grossTotal,
		Discount:     discount,
		NetTotal:     grossTotal.Sub(discount),
	}, nil
}

// Purchase agrega o cabeçalho e os itens, na ordem em que foram inseridos
type Purchase struct {
	Header *PurchaseHeader `json:"header"`
	Items  []*LineItem     `json:"items"`
}

// PurchaseItemRow é uma linha desnormalizada (item, cabeçalho, mercado)
type PurchaseItemRow struct {
	Item   LineItem       `json:"item"`
	Header PurchaseHeader `json:"header"`
	Market Market         `json:"market"`
}

// TruncateDate descarta o horário mantendo apenas a data civil
func TruncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
