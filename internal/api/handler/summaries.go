package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/gsproject/grocery-spending-api/internal/usecases/reporting"
	"github.com/gsproject/grocery-spending-api/pkg/apiErrors"
)

// GetMonthlySummary devolve o resumo gravado para o período mm-yyyy
func GetMonthlySummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		summary, err := service.GetMonthlySummary(r.Context(), period)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		if summary == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Resumo mensal não encontrado", map[string]string{"period": period})
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}
