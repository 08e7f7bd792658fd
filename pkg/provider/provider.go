// Package provider talks to generative-text backends and classifies their
// failures. Exactly one backend is bound per process; see Router.
package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/utkarshrajputt/concept-ai/pkg/models"
)

// ErrorKind classifies a provider failure.
type ErrorKind string

const (
	// KindConfig means no usable credential was configured.
	KindConfig ErrorKind = "config"
	// KindTransport covers network errors, timeouts, and non-success HTTP
	// statuses.
	KindTransport ErrorKind = "transport"
	// KindFormat means the response body did not match the expected envelope.
	KindFormat ErrorKind = "format"
)

// Error is a classified provider failure. It never wraps a panic; clients
// always return a text-or-Error value.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider %s error: %s", e.Kind, e.Message)
}

func configErr(format string, args ...any) *Error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

func transportErr(format string, args ...any) *Error {
	return &Error{Kind: KindTransport, Message: fmt.Sprintf(format, args...)}
}

func formatErr(format string, args ...any) *Error {
	return &Error{Kind: KindFormat, Message: fmt.Sprintf(format, args...)}
}

// Provider is a generative-text backend that produces explanation text for a
// (topic, level) pair. Implementations bound the call with the per-level
// timeout and never return partial text on timeout.
type Provider interface {
	Name() string
	Explain(ctx context.Context, topic, level string) (string, error)
}

// generation parameters shared by all backends.
const temperature = 0.7

// truncationNotice is appended when the backend reports the output was cut
// off by the token cap.
const truncationNotice = "\n\n*[Note: This explanation was truncated due to length limits. Try asking for a more specific aspect of this topic for a complete answer.]*"

// levelParams caps output length and wall-clock time per difficulty level.
// The two deepest levels get a tighter deadline: their longer generations
// must still finish inside the upstream hard ceiling on the whole request.
type levelParams struct {
	maxTokens int
	timeout   time.Duration
}

var generation = map[string]levelParams{
	models.LevelELI5:     {maxTokens: 600, timeout: 30 * time.Second},
	models.LevelStudent:  {maxTokens: 1000, timeout: 30 * time.Second},
	models.LevelGraduate: {maxTokens: 1400, timeout: 20 * time.Second},
	models.LevelAdvanced: {maxTokens: 1600, timeout: 20 * time.Second},
}

// paramsFor returns the generation parameters for a level, falling back to
// the student tier for unknown levels.
func paramsFor(level string) levelParams {
	if p, ok := generation[level]; ok {
		return p
	}
	return generation[models.LevelStudent]
}
