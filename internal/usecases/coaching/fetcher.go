package coaching

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-coach-api/infrastructure/integrator/tipservice/tipclient"
	"github.com/vfg2006/sales-coach-api/internal/domain"
)

// NoEntriesTip é exibida quando ainda não há registros
const NoEntriesTip = "Add your first sales entry to get a coaching tip."

// ErrTipSuperseded é devolvido quando uma busca mais nova do mesmo usuário cancelou esta
var ErrTipSuperseded = errors.New("tip request superseded by a newer one")

type TipFetcher interface {
	FetchTip(ctx context.Context, entries []*domain.Entry) (domain.Tip, error)
}

type inflight struct {
	id     uint64
	cancel context.CancelCauseFunc
}

// FetcherService busca a dica no serviço externo. Cada usuário tem no máximo
// uma busca em andamento: uma nova busca cancela a anterior.
type FetcherService struct {
	client tipclient.Client

	mu       sync.Mutex
	seq      uint64
	inflight map[string]inflight
}

func NewFetcherService(client tipclient.Client) *FetcherService {
	return &FetcherService{
		client:   client,
		inflight: make(map[string]inflight),
	}
}

// FetchTip nunca falha por causa do serviço de dicas: erros viram texto de diagnóstico.
// O único erro devolvido é ErrTipSuperseded (ou o cancelamento do próprio ctx).
func (s *FetcherService) FetchTip(ctx context.Context, entries []*domain.Entry) (domain.Tip, error) {
	if len(entries) == 0 {
		return domain.Tip{Text: NoEntriesTip, Degraded: true}, nil
	}

	var token, key string
	if session, ok := domain.SessionFromContext(ctx); ok {
		token = session.Token
		key = session.Username
	}

	reqCtx, done := s.begin(ctx, key)
	defer done()

	resp, err := s.client.RequestTip(reqCtx, tipclient.TipRequestParams{
		Entries: entries,
		Token:   token,
	})

	if errors.Is(context.Cause(reqCtx), ErrTipSuperseded) {
		logrus.WithField("username", key).Debug("Busca de dica substituída por uma mais nova")
		return domain.Tip{}, ErrTipSuperseded
	}
	if ctx.Err() != nil {
		return domain.Tip{}, ctx.Err()
	}

	if err != nil {
		logrus.WithError(err).Warn("Falha de transporte ao buscar dica")
		return domain.Tip{Text: fmt.Sprintf("Tip unavailable: %s", err.Error()), Degraded: true}, nil
	}

	return tipFromResponse(resp), nil
}

func tipFromResponse(resp *tipclient.TipResponse) domain.Tip {
	if !resp.OK() {
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        resp.Raw,
		}).Warn("Serviço de dicas respondeu com erro")

		return domain.Tip{
			Text:     fmt.Sprintf("Tip unavailable (%d %s): %s", resp.StatusCode, http.StatusText(resp.StatusCode), resp.Raw),
			Degraded: true,
		}
	}

	if resp.Tip == nil || *resp.Tip == "" {
		return domain.Tip{
			Text:     fmt.Sprintf("No tip returned: %s", resp.Raw),
			Degraded: true,
		}
	}

	return domain.Tip{Text: *resp.Tip}
}

// begin registra a busca do usuário e cancela a anterior, se houver.
// Requisições sem sessão não participam da exclusão.
func (s *FetcherService) begin(ctx context.Context, key string) (context.Context, func()) {
	reqCtx, cancel := context.WithCancelCause(ctx)
	if key == "" {
		return reqCtx, func() { cancel(nil) }
	}

	s.mu.Lock()
	s.seq++
	id := s.seq
	if previous, ok := s.inflight[key]; ok {
		previous.cancel(ErrTipSuperseded)
	}
	s.inflight[key] = inflight{id: id, cancel: cancel}
	s.mu.Unlock()

	return reqCtx, func() {
		s.mu.Lock()
		if current, ok := s.inflight[key]; ok && current.id == id {
			delete(s.inflight, key)
		}
		s.mu.Unlock()
		cancel(nil)
	}
}
