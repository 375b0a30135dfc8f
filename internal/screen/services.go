package screen

import (
	"context"

	"go.uber.org/zap"

	"github.com/welltegra/welllab/internal/advisor"
	"github.com/welltegra/welllab/internal/course"
	"github.com/welltegra/welllab/internal/llm"
	"github.com/welltegra/welllab/internal/progress"
)

// Services bundles what screens read from or call out to.
type Services struct {
	Catalog  *course.Catalog
	Progress progress.Reader
	// Advisor is nil when no LLM provider is configured.
	Advisor   *advisor.Service
	Logger    *zap.Logger
	SessionID string
}

// Context returns a background context tagged with the study session.
func (s Services) Context() context.Context {
	ctx := context.Background()
	if s.SessionID != "" {
		ctx = llm.WithSession(ctx, s.SessionID)
	}
	return ctx
}

// Log returns the logger, or a no-op logger when none is set.
func (s Services) Log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// AdvisorReady reports whether generative features can be used.
func (s Services) AdvisorReady() bool {
	return s.Advisor != nil
}
