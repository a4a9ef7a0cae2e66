package handler

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-coach-api/infrastructure/integrator/llm"
	"github.com/vfg2006/sales-coach-api/internal/domain"
	"github.com/vfg2006/sales-coach-api/internal/usecases/coaching"
	"github.com/vfg2006/sales-coach-api/pkg/log"
)

type TipRequest struct {
	Entries []*domain.Entry `json:"entries"`
}

type TipResult struct {
	Tip   string `json:"tip,omitempty"`
	Error string `json:"error,omitempty"`
}

// CompleteTip gera a dica com o modelo. Responde {tip} ou {error}.
func CompleteTip(advisor coaching.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, r, http.StatusBadRequest, TipResult{Error: "invalid request body"})
			return
		}

		for i, entry := range req.Entries {
			if entry == nil {
				writeJSON(w, r, http.StatusBadRequest, TipResult{Error: fmt.Sprintf("entries[%d]: entry is null", i)})
				return
			}
			if err := entry.Validate(); err != nil {
				writeJSON(w, r, http.StatusBadRequest, TipResult{Error: fmt.Sprintf("entries[%d]: %s", i, err.Error())})
				return
			}
		}

		tip, err := advisor.Advise(r.Context(), req.Entries)
		if err != nil {
			if errors.Is(err, coaching.ErrNoEntries) {
				writeJSON(w, r, http.StatusBadRequest, TipResult{Error: err.Error()})
				return
			}

			logger := log.ForContext(r.Context()).WithError(err)
			if errors.Is(err, llm.ErrNotConfigured) {
				logger.Warn("Modelo de linguagem não configurado")
			} else {
				logger.Error("Erro ao gerar dica com o modelo")
			}
			writeJSON(w, r, http.StatusBadGateway, TipResult{Error: err.Error()})
			return
		}

		writeJSON(w, r, http.StatusOK, TipResult{Tip: tip})
	}
}
