package tipclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-coach-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type tipRequestBody struct {
	Entries []*domain.Entry `json:"entries"`
}

type tipResponseBody struct {
	Tip   *string `json:"tip"`
	Error string  `json:"error"`
}

// RequestTip faz exatamente uma chamada ao serviço de dicas, sem retry.
// Status diferente de 2xx não é erro aqui: o corpo bruto é devolvido no TipResponse.
func (c *TipServiceClient) RequestTip(ctx context.Context, params TipRequestParams) (*TipResponse, error) {
	entries := params.Entries
	if entries == nil {
		entries = []*domain.Entry{}
	}

	payload, err := json.Marshal(tipRequestBody{Entries: entries})
	if err != nil {
		return nil, fmt.Errorf("encoding entries: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if params.Token != "" {
		req.Header.Set("Authorization", "Bearer "+params.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	result := &TipResponse{
		StatusCode: resp.StatusCode,
		Raw:        string(raw),
	}

	var body tipResponseBody
	if err := json.Unmarshal(raw, &body); err == nil {
		result.Tip = body.Tip
		result.Error = body.Error
	}

	return result, nil
}
