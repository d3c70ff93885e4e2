package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/config"
	"github.com/prepmate/interview-backend/internal/entity"
	"github.com/prepmate/interview-backend/internal/integration/common"
	pkghttp "github.com/prepmate/interview-backend/pkg/http"
)

// Connector talks to a self-hosted text-completion service over HTTP.
// Transient transport failures are retried; whatever survives the retries is
// reported as entity.ErrProviderUnavailable so callers can fall back.
type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Complete sends the prompt to the completion endpoint and returns raw text.
func (c *Connector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Debug(ctx, "requesting completion", zap.Int("prompt_length", len(prompt)))

	req := &entity.CompletionRequest{
		Prompt:      prompt,
		Temperature: c.config.Temperature,
	}

	var resp entity.CompletionResponse
	err := retry.Do(
		func() error {
			return c.connector.DoRequest(ctx, http.MethodPost, c.config.CompleteEndpoint, req, &resp)
		},
		append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))...,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrProviderUnavailable, err)
	}
	if resp.Text == "" {
		return "", fmt.Errorf("%w: empty completion", entity.ErrProviderUnavailable)
	}

	ctxzap.Debug(ctx, "completion received", zap.Int("result_length", len(resp.Text)))
	return resp.Text, nil
}
