package llm

//go:generate mockgen -source=llm.go -destination=mocks/mock_llm.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-coach-api/internal/config"
)

var (
	ErrNotConfigured = errors.New("llm: LLM_API_KEY not set")
	ErrEmptyResponse = errors.New("llm: empty response from model")
)

type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAIAdapter fala com qualquer endpoint compatível com a API de chat da OpenAI
type OpenAIAdapter struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAIAdapter(cfg *config.Config) *OpenAIAdapter {
	if cfg.LLM.APIKey == "" {
		logrus.Warn("LLM_API_KEY não configurada, o serviço de dicas vai responder com erro")
		return &OpenAIAdapter{model: cfg.LLM.Model, maxTokens: cfg.LLM.MaxTokens}
	}

	clientConfig := openai.DefaultConfig(cfg.LLM.APIKey)
	if cfg.LLM.BaseURL != "" {
		clientConfig.BaseURL = cfg.LLM.BaseURL
	}

	return &OpenAIAdapter{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     cfg.LLM.Model,
		maxTokens: cfg.LLM.MaxTokens,
	}
}

func (a *OpenAIAdapter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if a.client == nil {
		return "", ErrNotConfigured
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages:  messages,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("llm: API returned status %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("llm: request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}

	logrus.WithFields(logrus.Fields{
		"model":         resp.Model,
		"input_tokens":  resp.Usage.PromptTokens,
		"output_tokens": resp.Usage.CompletionTokens,
	}).Debug("Resposta do modelo recebida")

	return text, nil
}
