package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

var (
	bomPreco = domain.Market{ID: "MKT001", Name: "Bom Preço", City: "Recife"}
	atacadao = domain.Market{ID: "MKT002", Name: "Atacadão", City: "Olinda"}
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newHeader(id string, market domain.Market, purchaseDate, gross, discount string) *domain.PurchaseHeader {
	return &domain.PurchaseHeader{
		ID:           id,
		MarketID:     market.ID,
		PurchaseDate: date(purchaseDate),
		GrossTotal:   dec(gross),
		Discount:     dec(discount),
		NetTotal:     dec(gross).Sub(dec(discount)),
	}
}

func newRow(header *domain.PurchaseHeader, market domain.Market, code, description, quantity, unitPrice, total string) *domain.PurchaseItemRow {
	return &domain.PurchaseItemRow{
		Item: domain.LineItem{
			Code:        code,
			Description: description,
			Quantity:    dec(quantity),
			Unit:        "UN",
			UnitPrice:   dec(unitPrice),
			TotalPrice:  dec(total),
		},
		Header: *header,
		Market: market,
	}
}

// twoPurchases devolve H1 (desconto 5, itens somando 20) no Bom Preço e
// H2 (sem desconto, itens somando 10) no Atacadão.
func twoPurchases() ([]*domain.PurchaseHeader, []*domain.PurchaseItemRow) {
	h1 := newHeader("PUR001", bomPreco, "2024-01-10", "20", "5")
	h2 := newHeader("PUR002", atacadao, "2024-02-05", "10", "0")

	rows := []*domain.PurchaseItemRow{
		newRow(h1, bomPreco, "123", "Arroz", "1", "10", "10"),
		newRow(h1, bomPreco, "456", "Feijão", "2", "5", "10"),
		newRow(h2, atacadao, "789", "Leite", "2", "5", "10"),
	}

	return []*domain.PurchaseHeader{h1, h2}, rows
}
