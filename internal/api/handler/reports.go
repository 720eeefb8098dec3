package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gsproject/grocery-spending-api/internal/domain"
	"github.com/gsproject/grocery-spending-api/internal/usecases/reporting"
	"github.com/gsproject/grocery-spending-api/pkg/apiErrors"
	"github.com/gsproject/grocery-spending-api/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// parseReportFilters lê start_date, end_date e markets. Sem o parâmetro
// markets não há filtro; markets presente e vazio significa seleção vazia.
func parseReportFilters(r *http.Request) (domain.ReportFilters, error) {
	query := r.URL.Query()
	filters := domain.ReportFilters{}

	startDate, err := requiredDate(query.Get("start_date"), "start_date")
	if err != nil {
		return filters, err
	}
	endDate, err := requiredDate(query.Get("end_date"), "end_date")
	if err != nil {
		return filters, err
	}
	filters.StartDate = startDate
	filters.EndDate = endDate

	if values, present := query["markets"]; present {
		filters.Markets = make([]string, 0)
		for _, value := range values {
			for _, name := range strings.Split(value, ",") {
				if name = strings.TrimSpace(name); name != "" {
					filters.Markets = append(filters.Markets, name)
				}
			}
		}
	}

	return filters, nil
}

func requiredDate(raw, field string) (time.Time, error) {
	date, err := utils.ParseDate(raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, raw, "use o formato aaaa-mm-dd")
	}
	if date == nil {
		return time.Time{}, domain.NewValidationError(field, raw, "parâmetro obrigatório")
	}
	return *date, nil
}

func GetPeriodReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		report, err := service.GetPeriodReport(r.Context(), filters)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

// ExportPeriodCSV exporta a listagem de itens do relatório
func ExportPeriodCSV(service reporting.Reporter, delimiter rune) http.HandlerFunc {
	return exportPeriod(service, "csv", "text/csv; charset=utf-8", func(buf *bytes.Buffer, rows []*domain.PurchaseItemRow) error {
		return reporting.WriteItemsCSV(buf, rows, delimiter)
	})
}

func ExportPeriodXLSX(service reporting.Reporter) http.HandlerFunc {
	return exportPeriod(service, "xlsx", xlsxContentType, func(buf *bytes.Buffer, rows []*domain.PurchaseItemRow) error {
		return reporting.WriteItemsXLSX(buf, rows)
	})
}

func exportPeriod(
	service reporting.Reporter,
	extension string,
	contentType string,
	write func(*bytes.Buffer, []*domain.PurchaseItemRow) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		report, err := service.GetPeriodReport(r.Context(), filters)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		if report.Status != domain.ReportStatusOK {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Nenhum item para exportar", map[string]any{"status": report.Status})
			return
		}

		var buf bytes.Buffer
		if err := write(&buf, report.Items); err != nil {
			writeDomainError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reporting.ExportFileName(report.Filters, extension)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
