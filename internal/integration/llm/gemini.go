package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/prepmate/interview-backend/internal/config"
	"github.com/prepmate/interview-backend/internal/entity"
)

// GeminiConnector completes prompts through the Google Gemini API.
type GeminiConnector struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiConnector(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*GeminiConnector, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiConnector{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (c *GeminiConnector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Debug(ctx, "requesting gemini completion",
		zap.String("model", c.model), zap.Int("prompt_length", len(prompt)))

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrProviderUnavailable, err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: empty gemini response", entity.ErrProviderUnavailable)
	}

	ctxzap.Debug(ctx, "gemini completion received", zap.Int("result_length", len(text)))
	return text, nil
}

func (c *GeminiConnector) Close() error {
	return c.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
