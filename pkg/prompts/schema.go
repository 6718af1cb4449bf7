// Package prompts assembles the text prompts that drive the LLM backend.
// All builders are pure string assembly; nothing here calls out.
package prompts

import (
	"fmt"
	"strings"
)

// TableDescription documents one warehouse table for the SQL generation
// prompt. The analytical schema is fixed and externally managed; this is a
// description of it, not a source of truth the engine enforces.
type TableDescription struct {
	Name    string
	Purpose string
	Columns []string
}

// AnalyticalTables describes the four warehouse tables the SQL agent may
// query: the shipment-level fact table, the per-reading sensor detail
// table, the precomputed geospatial heatmap, and the cross-route
// benchmarking matrix.
var AnalyticalTables = []TableDescription{
	{
		Name:    "mart_logistics_master",
		Purpose: "Shipment-level fact table: one row per shipment with route, risk level, and fatigue aggregates.",
		Columns: []string{
			"code (STRING): unique shipment ID",
			"departure_date (DATE): partition key, shipment start",
			"arrival_date (DATE): shipment end, NULL while in transit",
			"destination (STRING): canonical destination code, e.g. 'CNSHG'",
			"product (STRING), transport_mode (STRING)",
			"cumulative_shock_index (FLOAT64): fatigue / cumulative stress score",
			"risk_level (STRING): 'Low', 'Medium', 'High', 'Critical'",
			"temp_excursion_duration_min (INT64): minutes outside valid temp range",
			"is_damaged (BOOL): damage flag",
		},
	},
	{
		Name:    "mart_sensor_detail",
		Purpose: "Granular sensor readings: dynamic threshold queries (e.g. shock > 7G), multi-variable correlation, directional analysis.",
		Columns: []string{
			"code (STRING): shipment ID, joins to mart_logistics_master",
			"event_date (DATE), event_ts (TIMESTAMP)",
			"shock_g (FLOAT64), temperature (FLOAT64), humidity (FLOAT64)",
			"acc_x, acc_y, acc_z (FLOAT64), tilt_x, tilt_y (FLOAT64)",
			"lat (FLOAT64), lon (FLOAT64)",
		},
	},
	{
		Name:    "mart_risk_heatmap",
		Purpose: "Precomputed geospatial risk grid: heatmaps, risk maps, where shocks occur.",
		Columns: []string{
			"lat_center (FLOAT64), lon_center (FLOAT64)",
			"location_label (STRING)",
			"risk_score (FLOAT64), high_impact_events (INT64)",
		},
	},
	{
		Name:    "mart_quality_matrix",
		Purpose: "Cross-route benchmarking: compare performance of packaging, routes, and transport modes.",
		Columns: []string{
			"transport_mode (STRING), package_type (STRING), route (STRING)",
			"damage_rate (FLOAT64), avg_fatigue_score (FLOAT64), safety_score (FLOAT64)",
		},
	},
}

// TableInfo renders the schema description for the SQL generation prompt.
// The qualifier prefixes table names, e.g. "coldsight-prod.coldchain".
func TableInfo(qualifier string) string {
	var sb strings.Builder
	sb.WriteString("Available tables (always use fully qualified names with backticks):\n\n")
	for i, table := range AnalyticalTables {
		fmt.Fprintf(&sb, "%d. `%s.%s`\n", i+1, qualifier, table.Name)
		fmt.Fprintf(&sb, "   - Purpose: %s\n", table.Purpose)
		sb.WriteString("   - Columns:\n")
		for _, col := range table.Columns {
			fmt.Fprintf(&sb, "     - %s\n", col)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
