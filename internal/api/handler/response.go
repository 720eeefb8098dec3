package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/gsproject/grocery-spending-api/internal/domain"
	"github.com/gsproject/grocery-spending-api/internal/usecases/registering"
	"github.com/gsproject/grocery-spending-api/pkg/apiErrors"
	"github.com/gsproject/grocery-spending-api/pkg/log"
	"github.com/gsproject/grocery-spending-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeDomainError traduz os erros de domínio para os códigos da API
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		rangeErr        *domain.InvalidRangeError
		noItemsErr      *registering.NoValidItemsError
		validationErr   *domain.ValidationError
		preconditionErr *domain.PreconditionError
		documentErr     *domain.DocumentReadError
		persistenceErr  *domain.PersistenceError
	)

	switch {
	case errors.As(err, &rangeErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, rangeErr.Error(), map[string]string{
			"start_date": rangeErr.Start.Format(utils.DateLayout),
			"end_date":   rangeErr.End.Format(utils.DateLayout),
		})
	case errors.As(err, &noItemsErr):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, noItemsErr.Error(), map[string]any{"rejected": noItemsErr.Rejected})
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationErr.Error(), validationErr)
	case errors.As(err, &preconditionErr):
		apiErrors.WriteError(w, apiErrors.ErrPrecondition, preconditionErr.Error(), nil)
	case errors.As(err, &documentErr):
		apiErrors.WriteError(w, apiErrors.ErrDocumentRead, documentErr.Error(), nil)
	case errors.Is(err, domain.ErrDuplicateMarket):
		apiErrors.WriteError(w, apiErrors.ErrDuplicate, "Mercado já cadastrado nesta cidade", nil)
	case errors.As(err, &persistenceErr):
		logger.WithField("op", persistenceErr.Op).Error("Erro de persistência")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o banco de dados", nil)
	default:
		logger.Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}
