package prompts

import (
	"fmt"
	"strings"

	"github.com/coldsight-ai/coldsight-engine/pkg/glossary"
	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

// ClarificationSentinel is the fixed prefix the model emits instead of a
// query when the question under-specifies a required filter. The parser on
// the receiving side treats everything after it as the clarification text.
const ClarificationSentinel = "CLARIFICATION_NEEDED:"

// SQLGenSystemMessage frames the generation task.
const SQLGenSystemMessage = "You are a Standard SQL expert for a cold-chain logistics company. " +
	"Answer user questions by generating a single valid SQL query against the analytical schema, " +
	"or ask for clarification when the question is underspecified."

// BuildSQLGenerationPrompt assembles the full generation prompt: schema,
// join guidance, metric disambiguation rules, location code mapping,
// few-shot examples (including annotated wrong ones), the clarification
// rule, and the trailing conversation window.
func BuildSQLGenerationPrompt(qualifier string, codes []glossary.LocationCode, question string, history []models.ConversationTurn, window int) string {
	var sb strings.Builder

	sb.WriteString("Generate a Standard SQL query answering the user's question.\n\n")

	// Schema
	sb.WriteString(TableInfo(qualifier))

	// Join guidance
	sb.WriteString("Join Guidance:\n")
	fmt.Fprintf(&sb, "- `mart_sensor_detail` only carries lat/lon, NOT destination names. To filter sensor "+
		"readings by destination you MUST JOIN `%s.mart_sensor_detail` t1 with "+
		"`%s.mart_logistics_master` t2 ON t1.code = t2.code and filter on t2.destination.\n", qualifier, qualifier)
	sb.WriteString("- When joining tables that share column names (code, event_date), alias every table and " +
		"qualify every column reference. Unqualified references are ambiguous and invalid.\n")
	sb.WriteString("- Ranking or top-N queries over shipments must deduplicate by the unique shipment code " +
		"(COUNT(DISTINCT t2.code) or an inner DISTINCT subquery), never raw row counts of sensor readings.\n\n")

	// Metric disambiguation
	sb.WriteString("Metric Definition Rules (overloaded terms):\n")
	sb.WriteString("- \"출발 물동량\" / dispatched volume: shipments that STARTED in the period. " +
		"Filter: departure_date BETWEEN @start AND @end (both boundaries inclusive).\n")
	sb.WriteString("- \"운송 물동량\" / in-transit volume: shipments ACTIVE at any point in the period. " +
		"Filter: departure_date <= @end AND (arrival_date >= @start OR arrival_date IS NULL). " +
		"Both boundaries inclusive; the two definitions are mutually exclusive, never mix their filters.\n")
	sb.WriteString("- \"일탈률\" / deviation rate: per-period = readings outside threshold / total readings " +
		"(mart_sensor_detail); per-shipment = shipments with any excursion / total shipments " +
		"(mart_logistics_master). Pick the level the question implies; per-shipment is the default.\n\n")

	// Location fuzzy matching
	sb.WriteString("Code Mapping Guide (interpret location names as follows):\n")
	for _, code := range codes {
		fmt.Fprintf(&sb, "- %s -> '%s'\n", strings.Join(code.Variants, ", "), code.Code)
	}
	sb.WriteByte('\n')

	// Few-shot examples
	writeSQLExamples(&sb, qualifier)

	// Clarification rule
	sb.WriteString("Clarification Rule:\n")
	fmt.Fprintf(&sb, "If the question omits a required filter — no date range for a volume metric, or an "+
		"ambiguous metric name with no way to pick a definition — do NOT guess. Respond with exactly:\n"+
		"%s <one short question, in Korean, asking for the missing detail>\n\n", ClarificationSentinel)

	sb.WriteString("Output the SQL query only, with no explanation and no markdown fences.\n\n")

	fmt.Fprintf(&sb, "Previous Conversation:\n%s\n", FormatHistory(history, window))
	fmt.Fprintf(&sb, "Question: %s\nSQL Query:", question)

	return sb.String()
}

// writeSQLExamples appends worked query pairs. The wrong example is kept
// deliberately: models repeat the unqualified-destination mistake unless
// shown it annotated as an error.
func writeSQLExamples(sb *strings.Builder, qualifier string) {
	sb.WriteString("Example SQLs (few-shot):\n\n")

	sb.WriteString("1. \"해상 운송 중 5G 이상 충격 발생 비율\" (ratio calculation)\n")
	fmt.Fprintf(sb, `SELECT
    t2.transport_mode,
    COUNTIF(t1.shock_g >= 5) AS high_shock_count,
    COUNT(*) AS total_sensor_readings,
    SAFE_DIVIDE(COUNTIF(t1.shock_g >= 5), COUNT(*)) AS high_shock_ratio
FROM `+"`%s.mart_sensor_detail`"+` t1
JOIN `+"`%s.mart_logistics_master`"+` t2 ON t1.code = t2.code
WHERE t2.transport_mode = 'Ocean'
GROUP BY 1
`, qualifier, qualifier)
	sb.WriteByte('\n')

	sb.WriteString("2. \"베트남행 화물 중 습도 이탈 구간\" (location analysis)\n")
	sb.WriteString("-- WRONG (destination is not a column of mart_sensor_detail):\n")
	fmt.Fprintf(sb, "-- SELECT lat, lon, COUNT(*) FROM `%s.mart_sensor_detail` WHERE destination LIKE '%%VN%%'\n", qualifier)
	sb.WriteString("-- CORRECT:\n")
	fmt.Fprintf(sb, `SELECT t1.lat, t1.lon, COUNT(*) AS excursion_count
FROM `+"`%s.mart_sensor_detail`"+` t1
JOIN `+"`%s.mart_logistics_master`"+` t2 ON t1.code = t2.code
WHERE t2.destination IN ('VNSGN', 'VNHPH') AND t1.humidity > 75
GROUP BY 1, 2
`, qualifier, qualifier)
	sb.WriteByte('\n')

	sb.WriteString("3. \"이번 달 중국에서 영하 온도 충격 건수\" (location + sensor condition)\n")
	fmt.Fprintf(sb, `SELECT COUNT(*) AS shock_count_below_zero
FROM `+"`%s.mart_sensor_detail`"+` t1
JOIN `+"`%s.mart_logistics_master`"+` t2 ON t1.code = t2.code
WHERE t2.destination IN ('CNSHG', 'CNNBG', 'CNRZH', 'CNLYG')
    AND t1.temperature < 0
    AND t1.shock_g > 0
    AND t1.event_date BETWEEN DATE_TRUNC(CURRENT_DATE(), MONTH) AND CURRENT_DATE()
`, qualifier, qualifier)
	sb.WriteByte('\n')

	sb.WriteString("4. \"60분 이상 지속된 온도 이탈 운송 건의 피로도 순위\" (duration + ranking)\n")
	sb.WriteString("-- 'Duration' refers to the precomputed temp_excursion_duration_min in the master table.\n")
	fmt.Fprintf(sb, `SELECT DISTINCT t2.code, t2.cumulative_shock_index
FROM `+"`%s.mart_logistics_master`"+` t2
WHERE t2.temp_excursion_duration_min >= 60
ORDER BY t2.cumulative_shock_index DESC
LIMIT 10
`, qualifier)
	sb.WriteByte('\n')
}
