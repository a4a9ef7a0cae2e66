package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-coach-api/internal/domain"
	"github.com/vfg2006/sales-coach-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-coach-api/internal/usecases/recording"
	"github.com/vfg2006/sales-coach-api/pkg/apiErrors"
	"github.com/vfg2006/sales-coach-api/pkg/log"
)

func ListEntries(service recording.EntryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := limitFromQuery(w, r)
		if !ok {
			return
		}

		entries, err := service.ListRecent(r.Context(), limit)
		if err != nil {
			handleEntryError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"entries": entries,
		})
	}
}

func CreateEntry(service recording.EntryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form domain.EntryForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		entry, err := service.Create(r.Context(), form)
		if err != nil {
			handleEntryError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, entry)
	}
}

func ClearEntries(service recording.EntryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := service.ClearAll(r.Context())
		if err != nil {
			handleEntryError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]int64{
			"deleted": deleted,
		})
	}
}

func GetEntrySummary(service recording.EntryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := limitFromQuery(w, r)
		if !ok {
			return
		}

		entries, err := service.ListRecent(r.Context(), limit)
		if err != nil {
			handleEntryError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, aggregating.Summarize(entries))
	}
}

func handleEntryError(w http.ResponseWriter, r *http.Request, err error) {
	var entryErr *recording.EntryError
	if errors.As(err, &entryErr) {
		var details map[string]any
		if entryErr.Field != "" {
			details = map[string]any{"field": entryErr.Field}
		}

		if errors.Is(entryErr, recording.ErrInvalidEntry) {
			apiErrors.WriteError(w, entryErr.Code, entryErr.Details, details)
			return
		}

		// Falhas de banco não expõem detalhes ao cliente
		log.ForContext(r.Context()).WithError(err).Error("Erro ao acessar registros de vendas")
		apiErrors.WriteError(w, entryErr.Code, "could not access sales entries", details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado nos registros de vendas")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
}
