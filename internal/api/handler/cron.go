package handler

import (
	"net/http"
	"slices"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/gsproject/grocery-spending-api/internal/scheduler"
	"github.com/gsproject/grocery-spending-api/pkg/apiErrors"
	"github.com/gsproject/grocery-spending-api/pkg/log"
)

const CronJobTypeMonthlySummary = "monthly-summary"

// CronJobServices associa o tipo da URL ao job que pode ser disparado manualmente
type CronJobServices map[string]scheduler.SyncJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for jobType := range s {
		types = append(types, jobType)
	}
	slices.Sort(types)
	return types
}

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, ok := services[cronType]
		if !ok || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: "+strings.Join(services.types(), ", "), nil)
			return
		}

		started := job.TriggerManualSync()
		log.ForContext(r.Context()).WithFields(log.Fields{
			"type":    cronType,
			"started": started,
		}).Info("Execução manual de cron job solicitada")

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já está em execução"
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for jobType, job := range services {
			if job != nil {
				status[jobType] = job.GetStatus()
			}
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
