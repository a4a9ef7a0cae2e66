package coaching

import (
	"context"
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-coach-api/infrastructure/integrator/llm"
	"github.com/vfg2006/sales-coach-api/internal/domain"
	"github.com/vfg2006/sales-coach-api/internal/usecases/aggregating"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrNoEntries = errors.New("at least one entry is required")

const systemPrompt = `You are a retail wireless sales coach. ` +
	`Reply with exactly one short, actionable coaching tip (one sentence, no preamble, no lists).`

// Advisor é o lado servidor do serviço de dicas: recebe os registros e pergunta ao modelo
type Advisor interface {
	Advise(ctx context.Context, entries []*domain.Entry) (string, error)
}

type AdvisorService struct {
	completer llm.Completer
}

func NewAdvisorService(completer llm.Completer) *AdvisorService {
	return &AdvisorService{completer: completer}
}

func (s *AdvisorService) Advise(ctx context.Context, entries []*domain.Entry) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoEntries
	}

	prompt, err := BuildPrompt(entries)
	if err != nil {
		return "", err
	}

	tip, err := s.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return "", err
	}

	return firstLine(tip), nil
}

// BuildPrompt embute os registros serializados e os totais no prompt do modelo
func BuildPrompt(entries []*domain.Entry) (string, error) {
	serialized, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar registros: %w", err)
	}

	summary := aggregating.Summarize(entries)

	var b strings.Builder
	b.WriteString("Here are my recent daily sales entries (newest first):\n")
	b.Write(serialized)
	fmt.Fprintf(&b, "\n\nTotals: %d lines (voice %d, BTS %d, IoT %d, HSI %d), accessories $%s, protection attach %s, average MRC $%s.\n",
		summary.TotalLines,
		summary.TotalVoiceLines,
		summary.TotalBTS,
		summary.TotalIoT,
		summary.TotalHSI,
		summary.TotalAccessories,
		summary.ProtectionPercent,
		summary.AverageMRC,
	)
	b.WriteString("Give me one tip to improve tomorrow.")

	return b.String(), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}
