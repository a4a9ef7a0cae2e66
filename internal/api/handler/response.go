package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-coach-api/pkg/apiErrors"
	"github.com/vfg2006/sales-coach-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// limitFromQuery lê ?limit=. Ausente devolve 0 (limite padrão do serviço).
func limitFromQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be a non-negative integer", map[string]any{
			"limit": raw,
		})
		return 0, false
	}

	return limit, true
}
