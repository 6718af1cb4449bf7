package prompts

import (
	"fmt"
	"strings"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

// FormatHistory renders the last window turns as a flat transcript.
// Returns "(none)" when there is no history so templates stay well-formed.
func FormatHistory(history []models.ConversationTurn, window int) string {
	if window <= 0 || len(history) == 0 {
		return "(none)"
	}
	if len(history) > window {
		history = history[len(history)-window:]
	}

	var sb strings.Builder
	for _, turn := range history {
		role := "User"
		if turn.Role == models.RoleAssistant {
			role = "Assistant"
		}
		fmt.Fprintf(&sb, "%s: %s\n", role, turn.Content)
	}
	return sb.String()
}
