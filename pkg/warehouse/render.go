package warehouse

import (
	"fmt"
	"strings"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

// RenderText serializes a row-set to a plain-text table for LLM
// consumption. Output is deterministic for a given row-set: columns keep
// query order, rows keep result order, values use %v formatting with no
// rounding or unit conversion.
func RenderText(data *models.TabularData) string {
	if data == nil || (len(data.Columns) == 0 && len(data.Rows) == 0) {
		return "(empty)"
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(data.Columns, "\t"))
	sb.WriteByte('\n')

	for _, row := range data.Rows {
		for i, col := range data.Columns {
			if i > 0 {
				sb.WriteByte('\t')
			}
			val, ok := row[col]
			if !ok || val == nil {
				sb.WriteString("NULL")
				continue
			}
			fmt.Fprintf(&sb, "%v", val)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
