package screen

import (
	"errors"
	"fmt"

	"github.com/welltegra/welllab/internal/advisor"
	"github.com/welltegra/welllab/internal/llm"
)

// FailureText turns an advisor error into the notification a learner
// sees. action names what was attempted, e.g. "generate a career path".
func FailureText(action string, err error) string {
	var (
		rate    *llm.ErrRateLimit
		invalid *llm.ErrInvalidResponse
		trunc   *llm.ErrMaxTokensExceeded
		down    *llm.ErrProviderUnavailable
	)
	switch {
	case errors.Is(err, advisor.ErrMissingInput):
		return fmt.Sprintf("Could not %s: fill in every required field.", action)
	case errors.Is(err, advisor.ErrMalformedQuiz):
		return fmt.Sprintf("Could not %s: the model returned an unusable quiz. Try again.", action)
	case errors.As(err, &rate):
		return fmt.Sprintf("Could not %s: the model is rate limiting requests. Wait a moment and try again.", action)
	case errors.As(err, &invalid), errors.As(err, &trunc):
		return fmt.Sprintf("Could not %s: the model's answer was incomplete. Try again.", action)
	case errors.As(err, &down):
		return fmt.Sprintf("Could not %s: the model provider is unreachable.", action)
	default:
		return fmt.Sprintf("Could not %s: %v", action, err)
	}
}
