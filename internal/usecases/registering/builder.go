package registering

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

// ItemInput é um item vindo da extração do cupom ou da digitação manual.
// TotalPrice nil significa que o total deve ser calculado como
// round(quantity*unit_price, 2). Manual marca a digitação manual: o código vira
// MANUAL e a unidade precisa estar em ManualUnits.
type ItemInput struct {
	Code        string           `json:"code"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Unit        string           `json:"unit"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	TotalPrice  *decimal.Decimal `json:"total_price,omitempty"`
	Manual      bool             `json:"-"`
}

func (in ItemInput) lineItem() (*domain.LineItem, error) {
	if !in.Manual {
		return domain.NewLineItem(in.Code, in.Description, in.Quantity, in.Unit, in.UnitPrice, in.total())
	}

	unit := strings.ToUpper(strings.TrimSpace(in.Unit))
	if !slices.Contains(ManualUnits, unit) {
		return nil, domain.NewValidationError("unit", in.Unit, "unidade não suportada, use UN, KG, LT, G ou ML")
	}

	total := in.Quantity.Mul(in.UnitPrice).Round(2)
	return domain.NewLineItem(domain.ManualItemCode, in.Description, in.Quantity, unit, in.UnitPrice, total)
}

func (in ItemInput) total() decimal.Decimal {
	if in.TotalPrice != nil {
		return *in.TotalPrice
	}
	return in.Quantity.Mul(in.UnitPrice).Round(2)
}

type HeaderInput struct {
	MarketID     string
	PurchaseDate time.Time
	Discount     decimal.Decimal
}

// RejectedItem descreve um item recusado na montagem da compra. Index começa em 1.
type RejectedItem struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
	Err         error  `json:"-"`
}

// BuildResult traz a compra montada. Positions[i] é a posição (a partir de 1)
// de Purchase.Items[i] na lista enviada.
type BuildResult struct {
	Purchase  *domain.Purchase `json:"purchase"`
	Positions []int            `json:"positions"`
	Rejected  []RejectedItem   `json:"rejected"`
}

// NoValidItemsError é devolvido quando todos os itens enviados foram recusados
type NoValidItemsError struct {
	Rejected []RejectedItem
}

func (e *NoValidItemsError) Error() string {
	return fmt.Sprintf("nenhum item válido (%d recusados)", len(e.Rejected))
}

func (e *NoValidItemsError) Unwrap() error {
	return domain.ErrNoItems
}

// Builder monta a compra validada a partir do cabeçalho e dos itens. Não tem
// efeitos colaterais; a persistência fica com o Service.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build recalcula o total bruto a partir dos itens aceitos. Itens inválidos são
// recusados individualmente sem interromper os demais.
func (b *Builder) Build(markets []*domain.Market, header HeaderInput, items []ItemInput) (*BuildResult, error) {
	if len(markets) == 0 {
		return nil, &domain.PreconditionError{
			Requirement: "cadastre ao menos um mercado antes de registrar compras",
			Err:         domain.ErrNoMarkets,
		}
	}

	market := findMarket(markets, header.MarketID)
	if market == nil {
		return nil, domain.NewValidationError("market_id", header.MarketID, "mercado não encontrado").Wrap(domain.ErrMarketNotFound)
	}

	if len(items) == 0 {
		return nil, domain.NewValidationError("items", 0, "informe ao menos um item").Wrap(domain.ErrNoItems)
	}

	result := &BuildResult{
		Positions: make([]int, 0, len(items)),
		Rejected:  make([]RejectedItem, 0),
	}
	accepted := make([]*domain.LineItem, 0, len(items))
	grossTotal := decimal.Zero

	for i, in := range items {
		index := i + 1

		item, err := in.lineItem()
		if err != nil {
			var validationErr *domain.ValidationError
			if errors.As(err, &validationErr) {
				err = validationErr.AtIndex(index)
				result.Rejected = append(result.Rejected, RejectedItem{
					Index:       index,
					Description: strings.TrimSpace(in.Description),
					Reason:      validationErr.Reason,
					Err:         err,
				})
			} else {
				result.Rejected = append(result.Rejected, RejectedItem{
					Index:       index,
					Description: strings.TrimSpace(in.Description),
					Reason:      err.Error(),
					Err:         err,
				})
			}
			continue
		}

		if !item.TotalConsistent() {
			logrus.WithFields(logrus.Fields{
				"index":          index,
				"description":    item.Description,
				"total_price":    item.TotalPrice.StringFixed(2),
				"expected_total": item.ExpectedTotal().StringFixed(2),
			}).Warn("registering: total do item diverge de quantidade x valor unitário, mantendo valor informado")
		}

		grossTotal = grossTotal.Add(item.TotalPrice)
		accepted = append(accepted, item)
		result.Positions = append(result.Positions, index)
	}

	if len(accepted) == 0 {
		return nil, &NoValidItemsError{Rejected: result.Rejected}
	}

	purchaseHeader, err := domain.NewPurchaseHeader(market.ID, header.PurchaseDate, grossTotal, header.Discount)
	if err != nil {
		return nil, err
	}

	result.Purchase = &domain.Purchase{
		Header: purchaseHeader,
		Items:  accepted,
	}

	return result, nil
}

func findMarket(markets []*domain.Market, id string) *domain.Market {
	for _, market := range markets {
		if market.ID == id {
			return market
		}
	}
	return nil
}
