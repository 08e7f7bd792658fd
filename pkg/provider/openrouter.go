package provider

import (
	"context"
	"net/http"

	"github.com/utkarshrajputt/concept-ai/pkg/config"
	"github.com/utkarshrajputt/concept-ai/pkg/topic"
)

// OpenRouter is the primary backend when its key is configured.
type OpenRouter struct {
	url    string
	apiKey string
	model  string
	client *http.Client
}

// NewOpenRouter creates an OpenRouter client from provider config.
func NewOpenRouter(cfg config.ProviderConfig) *OpenRouter {
	return &OpenRouter{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		client: http.DefaultClient,
	}
}

// Name identifies this backend in responses and logs.
func (p *OpenRouter) Name() string { return "openrouter" }

// Explain requests an explanation of topic at the given level.
func (p *OpenRouter) Explain(ctx context.Context, rawTopic, level string) (string, error) {
	prompt := promptFor(openRouterPrompts, topic.NormalizeLevel(level))
	return completeChat(ctx, p.client, p.url, p.apiKey, p.model, prompt, rawTopic, level)
}
