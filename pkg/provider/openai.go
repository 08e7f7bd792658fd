package provider

import (
	"context"
	"net/http"

	"github.com/utkarshrajputt/concept-ai/pkg/config"
	"github.com/utkarshrajputt/concept-ai/pkg/topic"
)

// OpenAI is the secondary backend, used when only its key is configured.
type OpenAI struct {
	url    string
	apiKey string
	model  string
	client *http.Client
}

// NewOpenAI creates an OpenAI client from provider config.
func NewOpenAI(cfg config.ProviderConfig) *OpenAI {
	return &OpenAI{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		client: http.DefaultClient,
	}
}

// Name identifies this backend in responses and logs.
func (p *OpenAI) Name() string { return "openai" }

// Explain requests an explanation of topic at the given level.
func (p *OpenAI) Explain(ctx context.Context, rawTopic, level string) (string, error) {
	prompt := promptFor(openAIPrompts, topic.NormalizeLevel(level))
	return completeChat(ctx, p.client, p.url, p.apiKey, p.model, prompt, rawTopic, level)
}
