package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/shopscout/backend/internal/domain"
)

const systemPrompt = `You are a shopping comparison assistant. Given a JSON list of products and
the user's preferences, produce a JSON object with fields: summary (string), bestOverall (product
title), bestValue (product title), recommendations (array of {productId, title, verdict, reasons}).
Respond with JSON only.`

// OpenAIGenerator produces comparison reports via an OpenAI chat model.
// Failures are returned to the caller, which falls back to the deterministic
// report; this generator never blocks a search result.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates an analysis generator backed by the given model
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// GenerateReport asks the model for a structured comparison of the products
func (g *OpenAIGenerator) GenerateReport(ctx context.Context, products []domain.Product, prefs domain.UserPreferences) (*domain.ComparisonReport, error) {
	if len(products) == 0 {
		return nil, domain.ErrAnalysisFailure
	}

	payload, err := json.Marshal(struct {
		Products    []domain.Product       `json:"products"`
		Preferences domain.UserPreferences `json:"preferences"`
	}{products, prefs})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAnalysisFailure, err)
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAnalysisFailure, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", domain.ErrAnalysisFailure)
	}

	report, err := parseReport(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("[ANALYSIS] unparseable completion: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrAnalysisFailure, err)
	}

	report.Generated = true
	return report, nil
}

// parseReport decodes the model output, tolerating markdown code fences some
// models wrap around JSON.
func parseReport(content string) (*domain.ComparisonReport, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var report domain.ComparisonReport
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &report); err != nil {
		return nil, err
	}
	if report.Summary == "" {
		return nil, fmt.Errorf("report missing summary")
	}
	return &report, nil
}
