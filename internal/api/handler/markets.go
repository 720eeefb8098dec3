package handler

import (
	"net/http"

	"github.com/gsproject/grocery-spending-api/internal/domain"
	"github.com/gsproject/grocery-spending-api/internal/usecases/markets"
	"github.com/gsproject/grocery-spending-api/pkg/apiErrors"
	"github.com/gsproject/grocery-spending-api/pkg/log"
)

type marketResponse struct {
	*domain.Market
	Label string `json:"label"`
}

func newMarketResponse(market *domain.Market) marketResponse {
	return marketResponse{Market: market, Label: market.Label()}
}

func ListMarkets(service markets.MarketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := service.ListMarkets(r.Context())
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		response := make([]marketResponse, 0, len(list))
		for _, market := range list {
			response = append(response, newMarketResponse(market))
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

func CreateMarket(service markets.MarketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateMarketRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		market, err := service.RegisterMarket(r.Context(), &request)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("market_id", market.ID).Info("Mercado cadastrado")
		writeJSON(w, r, http.StatusCreated, newMarketResponse(market))
	}
}
