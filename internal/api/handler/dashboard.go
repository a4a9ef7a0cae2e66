package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-coach-api/internal/usecases/coaching"
	"github.com/vfg2006/sales-coach-api/internal/usecases/recording"
	"github.com/vfg2006/sales-coach-api/pkg/apiErrors"
	"github.com/vfg2006/sales-coach-api/pkg/log"
)

func GetDashboard(service recording.EntryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := limitFromQuery(w, r)
		if !ok {
			return
		}

		dashboard, err := service.Dashboard(r.Context(), limit)
		if err != nil {
			handleEntryError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	}
}

// GetDashboardTip busca a dica de coaching sobre os registros atuais.
// Falhas do serviço de dicas chegam como texto de diagnóstico com status 200.
func GetDashboardTip(entryService recording.EntryService, fetcher coaching.TipFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := limitFromQuery(w, r)
		if !ok {
			return
		}

		entries, err := entryService.ListRecent(r.Context(), limit)
		if err != nil {
			handleEntryError(w, r, err)
			return
		}

		tip, err := fetcher.FetchTip(r.Context(), entries)
		if err != nil {
			switch {
			case errors.Is(err, coaching.ErrTipSuperseded):
				apiErrors.WriteError(w, apiErrors.ErrTipSuperseded, "a newer tip request replaced this one", nil)
			case errors.Is(err, context.Canceled):
				log.ForContext(r.Context()).Info("Cliente cancelou a busca da dica")
			default:
				log.ForContext(r.Context()).WithError(err).Error("Erro inesperado ao buscar dica")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
			}
			return
		}

		writeJSON(w, r, http.StatusOK, tip)
	}
}
