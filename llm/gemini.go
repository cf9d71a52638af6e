package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/codesync/autocomplete-server/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"strings"
)

const geminiPath = "/v1beta/models/{model}:generateContent"

// Gemini calls Google's generateContent endpoint.
type Gemini struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewGemini(client *resty.Client, apiKey, model string) *Gemini {
	return &Gemini{client: client, apiKey: apiKey, model: model}
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	body := models.GeminiRequest{
		Contents: []models.GeminiContent{
			{Role: "user", Parts: []models.GeminiPart{{Text: prompt}}},
		},
		GenerationConfig: models.GeminiGenerationConfig{
			CandidateCount:  1,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("model", g.model).
		SetQueryParam("key", g.apiKey).
		SetBody(body).
		Post(geminiPath)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	log.Debug().Str("model", g.model).Int("status", resp.StatusCode()).Dur("took", resp.Time()).Msg("gemini responded")

	if resp.IsError() {
		var apiErr models.GeminiErrorResponse
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Error != nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("gemini: %s", apiErr.Error.Message)
		}
		return "", fmt.Errorf("gemini: %s", resp.Status())
	}

	var gr models.GeminiResponse
	if err := json.Unmarshal(resp.Body(), &gr); err != nil {
		return "", fmt.Errorf("gemini decode: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoCompletion
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
