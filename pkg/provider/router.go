package provider

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/utkarshrajputt/concept-ai/pkg/config"
)

// Router binds one backend for the lifetime of the process. OpenRouter takes
// priority when both keys are configured; there is no per-request fallback
// to the other backend.
type Router struct {
	bound Provider
	log   zerolog.Logger
}

// NewRouter selects the backend from the configured credentials. With no
// credential at all the router still constructs; calls fail with a
// config-classified error so the HTTP layer can report it per request.
func NewRouter(cfg *config.Config, log zerolog.Logger) *Router {
	r := &Router{log: log}

	switch {
	case cfg.Providers.OpenRouter.APIKey != "":
		r.bound = NewOpenRouter(cfg.Providers.OpenRouter)
	case cfg.Providers.OpenAI.APIKey != "":
		r.bound = NewOpenAI(cfg.Providers.OpenAI)
	}

	if r.bound != nil {
		log.Info().Str("provider", r.bound.Name()).Msg("provider bound")
	} else {
		log.Warn().Msg("no provider credential configured")
	}
	return r
}

// Name returns the bound backend's name, or "none".
func (r *Router) Name() string {
	if r.bound == nil {
		return "none"
	}
	return r.bound.Name()
}

// Explain delegates to the bound backend.
func (r *Router) Explain(ctx context.Context, rawTopic, level string) (string, error) {
	if r.bound == nil {
		return "", configErr("no provider API key configured")
	}

	text, err := r.bound.Explain(ctx, rawTopic, level)
	if err != nil {
		r.log.Error().Err(err).Str("provider", r.bound.Name()).Str("level", level).Msg("provider call failed")
		return "", err
	}
	return text, nil
}
