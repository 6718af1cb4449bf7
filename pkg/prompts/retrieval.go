package prompts

import (
	"fmt"
	"strings"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

// RetrievalSystemMessage frames the glossary explanation task.
const RetrievalSystemMessage = "You are a documentation assistant for a cold-chain logistics company. " +
	"You explain business terms and internal guidelines using only the provided context."

// BuildRetrievalPrompt creates the prompt for answering a definitional
// question from matched glossary entries.
func BuildRetrievalPrompt(question string, context []models.GlossaryEntry) string {
	var sb strings.Builder

	sb.WriteString("Answer the user's question using ONLY the glossary context below.\n")
	sb.WriteString("If the asked term is not covered by the context, say explicitly that the information " +
		"is not available in the internal documentation. Do not invent definitions or statistics.\n")
	sb.WriteString("Answer in Korean (한국어).\n\n")

	sb.WriteString("Glossary Context:\n")
	for _, entry := range context {
		fmt.Fprintf(&sb, "### %s\n%s\n\n", entry.Term, entry.Definition)
	}

	fmt.Fprintf(&sb, "Question: %s\nAnswer:", question)

	return sb.String()
}
