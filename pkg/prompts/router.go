package prompts

import (
	"fmt"
	"strings"
)

// RouterSystemMessage frames the classification task.
const RouterSystemMessage = "You are a router assistant for a cold-chain logistics intelligent assistant. " +
	"Route the user's question to the appropriate agent and output only the agent name."

// BuildRouterPrompt creates the classification prompt. The model must
// answer with exactly one of the three canonical agent tokens.
func BuildRouterPrompt(question string) string {
	var sb strings.Builder

	sb.WriteString("Route the user's question to the appropriate agent.\n\n")

	sb.WriteString("**Agents:**\n")
	sb.WriteString("1. `SQL_AGENT`: For questions about quantifiable data, statistics, transport volumes, " +
		"deviation rates, shock counts, damage rates, or sensor data summaries. " +
		"(e.g., \"How many shipments to Vietnam?\", \"What was the average temperature last week?\", " +
		"\"상하이행 파손율 알려줘\")\n")
	sb.WriteString("2. `RETRIEVAL_AGENT`: For questions about definitions, policies, guidelines, measurement " +
		"criteria, or qualitative explanations found in internal documents. " +
		"(e.g., \"What is the policy for winter transport?\", \"Explain the shock measurement criteria.\", " +
		"\"일탈률이 뭐야?\")\n")
	sb.WriteString("3. `GENERAL_AGENT`: For greetings, capability questions, or conversational inputs. " +
		"(e.g., \"Hello\", \"What can you do?\", \"안녕\")\n\n")

	sb.WriteString("**Rules (in priority order):**\n")
	sb.WriteString("- If the question contains a specific shipment ID, code, or other unique numeric token, choose `SQL_AGENT`.\n")
	sb.WriteString("- If the question requires database aggregation or statistics, choose `SQL_AGENT`.\n")
	sb.WriteString("- If the question mixes a numeric request with a why/how explanation, prefer `SQL_AGENT`.\n")
	sb.WriteString("- If the question asks why, how, or for a definition from documents, choose `RETRIEVAL_AGENT`.\n")
	sb.WriteString("- If the question is a greeting or asks what the system can do, choose `GENERAL_AGENT`.\n")
	sb.WriteString("- Output ONLY the agent name: `SQL_AGENT`, `RETRIEVAL_AGENT`, or `GENERAL_AGENT`.\n\n")

	fmt.Fprintf(&sb, "Question: %s\nAgent:", question)

	return sb.String()
}
