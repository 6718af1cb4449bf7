package prompts

import (
	"fmt"
	"strings"
)

// SynthesisSystemMessage frames the result interpretation task.
const SynthesisSystemMessage = "You are a helpful assistant for a cold-chain logistics company. " +
	"You turn SQL query results into concise natural-language answers in Korean."

// BuildSynthesisPrompt creates the prompt that turns a rendered row-set
// into prose. The model must only describe values present in the result.
func BuildSynthesisPrompt(question, sqlQuery, resultText string) string {
	var sb strings.Builder

	sb.WriteString("Based on the SQL query result, provide a natural language answer to the user's question.\n")
	sb.WriteString("Answer in Korean (한국어).\n\n")

	fmt.Fprintf(&sb, "User Question: %s\n", question)
	fmt.Fprintf(&sb, "SQL Query: %s\n", sqlQuery)
	fmt.Fprintf(&sb, "Query Result:\n%s\n\n", resultText)

	sb.WriteString("Summarize only the values present in the result. Never state that data is missing when " +
		"rows are shown above. Keep the answer concise and informative.\n\nAnswer:")

	return sb.String()
}
