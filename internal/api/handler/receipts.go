package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gsproject/grocery-spending-api/internal/usecases/extracting"
	"github.com/gsproject/grocery-spending-api/pkg/apiErrors"
	"github.com/gsproject/grocery-spending-api/pkg/log"
)

const receiptFormField = "file"

// ExtractReceipt lê o PDF enviado no campo "file" e devolve a prévia dos itens.
// Cupom legível sem itens reconhecidos responde 200 com manual_entry_required.
func ExtractReceipt(service extracting.Extractor, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > maxUploadBytes {
			apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo acima do limite permitido", map[string]int64{"limit_bytes": maxUploadBytes})
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo acima do limite permitido", map[string]int64{"limit_bytes": maxBytesErr.Limit})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Envie o cupom como multipart/form-data", nil)
			return
		}

		file, header, err := r.FormFile(receiptFormField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo file ausente", nil)
			return
		}
		defer file.Close()

		document, err := io.ReadAll(file)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Não foi possível ler o arquivo enviado", nil)
			return
		}

		result, err := service.Extract(r.Context(), document)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"filename": header.Filename,
			"items":    len(result.Items),
		}).Info("Cupom processado")

		writeJSON(w, r, http.StatusOK, result)
	}
}
