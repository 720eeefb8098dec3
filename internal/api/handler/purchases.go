package handler

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gsproject/grocery-spending-api/internal/usecases/registering"
	"github.com/gsproject/grocery-spending-api/pkg/apiErrors"
	"github.com/gsproject/grocery-spending-api/pkg/log"
	"github.com/gsproject/grocery-spending-api/pkg/utils"
)

type purchaseItemRequest struct {
	Code        string           `json:"code"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Unit        string           `json:"unit"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	TotalPrice  *decimal.Decimal `json:"total_price"`
}

type createPurchaseRequest struct {
	MarketID     string                `json:"market_id"`
	PurchaseDate string                `json:"purchase_date"`
	Discount     decimal.Decimal       `json:"discount"`
	Items        []purchaseItemRequest `json:"items"`
}

// CreatePurchase grava o cabeçalho e os itens. Itens sem total_price são
// tratados como digitação manual e passam pelo rascunho; um item manual inválido
// é recusado sozinho na montagem, sem derrubar os demais.
func CreatePurchase(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request createPurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		purchaseDate, err := utils.ParseDate(request.PurchaseDate)
		if err != nil || purchaseDate == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "purchase_date deve estar no formato aaaa-mm-dd", nil)
			return
		}

		draft := registering.NewDraft()
		for _, item := range request.Items {
			if item.TotalPrice != nil {
				draft.Add(registering.ItemInput{
					Code:        strings.TrimSpace(item.Code),
					Description: item.Description,
					Quantity:    item.Quantity,
					Unit:        item.Unit,
					UnitPrice:   item.UnitPrice,
					TotalPrice:  item.TotalPrice,
				})
				continue
			}

			draft.Add(registering.ItemInput{
				Description: item.Description,
				Quantity:    item.Quantity,
				Unit:        item.Unit,
				UnitPrice:   item.UnitPrice,
				Manual:      true,
			})
		}

		header := registering.HeaderInput{
			MarketID:     request.MarketID,
			PurchaseDate: *purchaseDate,
			Discount:     request.Discount,
		}

		result, err := service.Register(r.Context(), header, draft.Items())
		draft.Reset()
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"purchase_id": result.PurchaseID,
			"registered":  result.Registered,
			"total":       result.Total,
		}).Info(result.Message)

		status := http.StatusCreated
		if !result.Complete() {
			status = http.StatusMultiStatus
		}
		writeJSON(w, r, status, result)
	}
}
