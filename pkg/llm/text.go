package llm

import (
	"regexp"
	"strings"
)

// thinkTagPattern matches <think>...</think> tags that may appear at the
// start of LLM responses from reasoning models.
var thinkTagPattern = regexp.MustCompile(`(?s)^[\s]*<think>.*?</think>[\s]*`)

// fencePattern matches a leading markdown code fence with an optional
// language tag, e.g. "```sql".
var fencePattern = regexp.MustCompile("^```[a-zA-Z0-9_-]*[ \t]*\n?")

// StripThinking removes a leading <think>...</think> block from a response.
func StripThinking(response string) string {
	return thinkTagPattern.ReplaceAllString(response, "")
}

// StripCodeFences removes surrounding markdown code fences from a response.
// Models routinely wrap SQL or labels in ``` blocks even when told not to.
func StripCodeFences(response string) string {
	s := strings.TrimSpace(StripThinking(response))

	if loc := fencePattern.FindStringIndex(s); loc != nil && loc[0] == 0 {
		s = s[loc[1]:]
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}

	// Stray fences inside the body (seen with partial markdown output).
	s = strings.ReplaceAll(s, "```sql", "")
	s = strings.ReplaceAll(s, "```", "")

	return strings.TrimSpace(s)
}
