// Package service orchestrates validation, caching, and provider calls into
// the single explain operation.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/utkarshrajputt/concept-ai/pkg/models"
	"github.com/utkarshrajputt/concept-ai/pkg/store/sqlite"
	"github.com/utkarshrajputt/concept-ai/pkg/topic"
	"github.com/utkarshrajputt/concept-ai/pkg/validate"
)

// RequestError is a request-side rejection: bad level, empty topic, or a
// validator veto. Always recoverable by rephrasing; never a system fault.
type RequestError struct {
	Reason string
}

func (e *RequestError) Error() string { return e.Reason }

// RejectedError means the provider answered but the answer indicated the
// input was not a valid educational topic. The answer is never cached.
type RejectedError struct {
	Topic string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("The AI detected that '%s' is not a valid educational topic. Please try a different query.", e.Topic)
}

// Explainer is the provider boundary the service depends on.
type Explainer interface {
	Name() string
	Explain(ctx context.Context, topic, level string) (string, error)
}

// Service answers explain requests from the cache or the bound provider.
type Service struct {
	store    *sqlite.Store
	provider Explainer
	log      zerolog.Logger
}

// New creates a Service.
func New(store *sqlite.Store, provider Explainer, log zerolog.Logger) *Service {
	return &Service{store: store, provider: provider, log: log}
}

// Explain runs the full pipeline: level gate, request validation, cache
// lookup, provider call, response validation, cache write. Cache faults are
// logged and never block a correct answer.
func (s *Service) Explain(ctx context.Context, req models.ExplainRequest) (*models.Explanation, error) {
	rawTopic := strings.TrimSpace(req.Topic)
	if rawTopic == "" {
		return nil, &RequestError{Reason: "Topic is required"}
	}

	level := topic.NormalizeLevel(req.Level)
	if level == "" {
		return nil, &RequestError{Reason: "Level is required"}
	}
	if !models.ValidLevel(level) {
		return nil, &RequestError{Reason: fmt.Sprintf("Invalid level. Must be one of: %s", strings.Join(models.Levels, ", "))}
	}

	if verdict := validate.Topic(rawTopic); !verdict.Valid {
		return nil, &RequestError{Reason: verdict.Reason}
	}

	if !req.ForceRefresh {
		cached, ok, err := s.store.Get(ctx, rawTopic, level)
		if err != nil {
			s.log.Warn().Err(err).Str("topic", rawTopic).Str("level", level).Msg("cache read failed, treating as miss")
		}
		if ok {
			return &models.Explanation{
				Topic:        rawTopic,
				Level:        level,
				Explanation:  cached,
				Cached:       true,
				ProviderUsed: "cached",
			}, nil
		}
	}

	text, err := s.provider.Explain(ctx, rawTopic, level)
	if err != nil {
		return nil, err
	}

	if !validate.AcceptableResponse(text) {
		s.log.Info().Str("topic", rawTopic).Msg("provider answer rejected, not caching")
		return nil, &RejectedError{Topic: rawTopic}
	}

	if err := s.store.Put(ctx, rawTopic, level, text); err != nil {
		s.log.Warn().Err(err).Str("topic", rawTopic).Str("level", level).Msg("cache write failed, serving uncached answer")
	}

	return &models.Explanation{
		Topic:        rawTopic,
		Level:        level,
		Explanation:  text,
		Cached:       false,
		Regenerated:  req.ForceRefresh,
		ProviderUsed: s.provider.Name(),
	}, nil
}

// Delete removes a cached entry by (topic, level). Not-found is a normal
// outcome with Deleted false.
func (s *Service) Delete(ctx context.Context, rawTopic, level string) (models.DeleteResult, error) {
	if strings.TrimSpace(rawTopic) == "" {
		return models.DeleteResult{}, &RequestError{Reason: "Topic is required"}
	}
	level = topic.NormalizeLevel(level)
	if !models.ValidLevel(level) {
		return models.DeleteResult{}, &RequestError{Reason: fmt.Sprintf("Invalid level. Must be one of: %s", strings.Join(models.Levels, ", "))}
	}

	n, err := s.store.Delete(ctx, rawTopic, level)
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Deleted: n > 0, Removed: n}, nil
}
