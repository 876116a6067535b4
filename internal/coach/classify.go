package coach

import (
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

// classifyReply classifies an assistant reply by a heuristic rule cascade.
// Precedence is fixed: question, then insight, then suggestion, else advice;
// the first match wins.
func classifyReply(reply string) types.MessageType {
	if strings.Contains(reply, "?") {
		return types.TypeQuestion
	}

	lower := strings.ToLower(reply)

	for _, marker := range []string{"insight", "analysis", "opportunity"} {
		if strings.Contains(lower, marker) {
			return types.TypeInsight
		}
	}

	for _, marker := range []string{"consider", "you might", "suggest"} {
		if strings.Contains(lower, marker) {
			return types.TypeSuggestion
		}
	}

	return types.TypeAdvice
}
