package handler

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gsproject/grocery-spending-api/internal/api/handler/router"
	"github.com/gsproject/grocery-spending-api/internal/domain"
	"github.com/gsproject/grocery-spending-api/internal/usecases/extracting"
	extractingmocks "github.com/gsproject/grocery-spending-api/internal/usecases/extracting/mocks"
	"github.com/gsproject/grocery-spending-api/pkg/apiErrors"
)

func multipartBody(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, "cupom.pdf")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func postReceipt(routes []router.Route, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))
	req := httptest.NewRequest(http.MethodPost, "/v1/receipts/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func TestExtractReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := extractingmocks.NewMockExtractor(ctrl)
	routes := Receipts(service, 1<<20)
	document := []byte("%PDF-1.4 cupom")

	t.Run("Itens reconhecidos", func(t *testing.T) {
		service.EXPECT().Extract(gomock.Any(), document).Return(&extracting.ExtractionResult{
			Items: []extracting.ParsedItem{{
				Sequence: 1, Code: "7891000100103", Description: "ARROZ TIPO 1",
				Quantity: decimal.NewFromInt(2), Unit: "UN",
				UnitPrice: decimal.RequireFromString("5.50"), TotalPrice: decimal.RequireFromString("11.00"),
			}},
			SuggestedTotal: decimal.RequireFromString("11.00"),
		}, nil)

		body, contentType := multipartBody(t, "file", document)
		rec := postReceipt(routes, body, contentType)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"manual_entry_required":false`)
		assert.Contains(t, rec.Body.String(), "ARROZ TIPO 1")
	})

	t.Run("Nenhum item reconhecido", func(t *testing.T) {
		service.EXPECT().Extract(gomock.Any(), document).Return(&extracting.ExtractionResult{
			Items:               []extracting.ParsedItem{},
			ManualEntryRequired: true,
		}, nil)

		body, contentType := multipartBody(t, "file", document)
		rec := postReceipt(routes, body, contentType)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"manual_entry_required":true`)
	})

	t.Run("Documento ilegível", func(t *testing.T) {
		service.EXPECT().Extract(gomock.Any(), document).Return(nil, &domain.DocumentReadError{Err: errors.New("xref corrompida")})

		body, contentType := multipartBody(t, "file", document)
		rec := postReceipt(routes, body, contentType)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, apiErrors.ErrDocumentRead, decodeAPIError(t, rec).Code)
	})

	t.Run("Campo ausente", func(t *testing.T) {
		body, contentType := multipartBody(t, "arquivo", document)
		rec := postReceipt(routes, body, contentType)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("Arquivo acima do limite", func(t *testing.T) {
		body, contentType := multipartBody(t, "file", bytes.Repeat([]byte("x"), 2<<20))
		rec := postReceipt(routes, body, contentType)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, apiErrors.ErrPayloadTooLarge, decodeAPIError(t, rec).Code)
	})
}
