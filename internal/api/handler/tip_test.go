package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	llmmocks "github.com/vfg2006/sales-coach-api/infrastructure/integrator/llm/mocks"
	"github.com/vfg2006/sales-coach-api/internal/usecases/coaching"
	"go.uber.org/mock/gomock"
)

func tipEntryJSON(voiceLines, accessories string) string {
	return `{"entries":[{"id":"A","date":"2024-01-01","voiceLines":` + voiceLines +
		`,"bts":5,"iot":0,"hsi":0,"accessories":` + accessories +
		`,"protection":3,"planName":"X","mrc":"50.00"}]}`
}

func TestCompleteTip(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		callsModel bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "registro válido",
			body:       tipEntryJSON("10", `"2.50"`),
			callsModel: true,
			wantStatus: http.StatusOK,
			wantBody:   `"tip":"Offer protection on every new line."`,
		},
		{
			name:       "contagem negativa não chega ao modelo",
			body:       tipEntryJSON("-4", `"2.50"`),
			wantStatus: http.StatusBadRequest,
			wantBody:   "voiceLines",
		},
		{
			name:       "contagem acima do INTEGER",
			body:       tipEntryJSON("3000000000", `"2.50"`),
			wantStatus: http.StatusBadRequest,
			wantBody:   "voiceLines",
		},
		{
			name:       "valor em notação exponencial",
			body:       tipEntryJSON("10", `"1e50000000"`),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error"`,
		},
		{
			name:       "registro nulo",
			body:       `{"entries":[null]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "entries[0]",
		},
		{
			name:       "sem registros",
			body:       `{"entries":[]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   coaching.ErrNoEntries.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			completer := llmmocks.NewMockCompleter(ctrl)
			if tt.callsModel {
				completer.EXPECT().
					Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("Offer protection on every new line.", nil)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/tip", strings.NewReader(tt.body))
			CompleteTip(coaching.NewAdvisorService(completer)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
