package tipclient

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-coach-api/internal/config"
	"github.com/vfg2006/sales-coach-api/internal/domain"
)

type Client interface {
	RequestTip(ctx context.Context, params TipRequestParams) (*TipResponse, error)
}

type TipServiceClient struct {
	httpClient *http.Client
	url        string
}

// NewClient cria o cliente do serviço de dicas. Timeout zero significa sem limite.
func NewClient(cfg *config.Config) Client {
	return &TipServiceClient{
		httpClient: &http.Client{
			Timeout: cfg.Coach.Timeout,
		},
		url: cfg.Coach.TipURL,
	}
}

type TipRequestParams struct {
	Entries []*domain.Entry
	Token   string
}

// TipResponse guarda o corpo bruto junto com os campos decodificados,
// para que o chamador possa exibir o payload quando algo vier faltando.
type TipResponse struct {
	StatusCode int
	Raw        string
	Tip        *string
	Error      string
}

// OK indica status 2xx
func (r *TipResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
