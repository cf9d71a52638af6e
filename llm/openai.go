package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/codesync/autocomplete-server/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// OpenAI calls an OpenAI-compatible chat completions endpoint.
type OpenAI struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewOpenAI(client *resty.Client, apiKey, model string) *OpenAI {
	return &OpenAI{client: client, apiKey: apiKey, model: model}
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	body := models.AIRequest{
		Model:     o.model,
		Messages:  []models.AIMessage{{Role: "user", Content: prompt}},
		MaxTokens: maxOutputTokens,
		N:         1,
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetAuthToken(o.apiKey).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	log.Debug().Str("model", o.model).Int("status", resp.StatusCode()).Dur("took", resp.Time()).Msg("openai responded")

	if resp.IsError() {
		var apiErr models.AIErrorResponse
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Error != nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("openai: %s", apiErr.Error.Message)
		}
		return "", fmt.Errorf("openai: %s", resp.Status())
	}

	var rsp models.AIResponse
	if err := json.Unmarshal(resp.Body(), &rsp); err != nil {
		return "", fmt.Errorf("openai decode: %w", err)
	}
	if len(rsp.Choices) == 0 {
		return "", ErrNoCompletion
	}
	return rsp.Choices[0].Message.Content, nil
}
