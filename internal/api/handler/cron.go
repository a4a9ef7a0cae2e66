package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-coach-api/internal/scheduler"
	"github.com/vfg2006/sales-coach-api/pkg/apiErrors"
	"github.com/vfg2006/sales-coach-api/pkg/log"
)

const CronJobTypeDailyReport = "daily-report"

// CronJobServices contém os serviços agendados que podem ser executados manualmente
type CronJobServices struct {
	DailyReportService *scheduler.DailyReportService
}

// RunCronJob executa manualmente a cron job indicada na URL
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeDailyReport:
			if services.DailyReportService == nil {
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "daily report service is not available", nil)
				return
			}

			started := services.DailyReportService.TriggerManualRun()
			log.ForContext(r.Context()).WithField("started", started).Info("Execução manual do relatório diário solicitada")

			writeJSON(w, r, http.StatusAccepted, map[string]any{
				"type":    cronType,
				"started": started,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "unknown cron job type, accepted values: daily-report", map[string]any{
				"type": cronType,
			})
		}
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DailyReportService != nil {
			status[CronJobTypeDailyReport] = services.DailyReportService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
