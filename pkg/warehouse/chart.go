package warehouse

import (
	"strings"
	"time"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

// DetectChartType sniffs result columns and suggests a chart type for the
// front end. Priority: geospatial (lat/lon pair) > time series (date-like
// column plus a numeric metric) > categorical comparison (label column plus
// a numeric metric). Returns ChartNone when nothing fits.
func DetectChartType(data *models.TabularData) models.ChartType {
	if data.Empty() {
		return models.ChartNone
	}

	var hasLat, hasLon, hasDate bool
	for _, col := range data.Columns {
		lower := strings.ToLower(col)
		switch {
		case strings.Contains(lower, "lat"):
			hasLat = true
		case strings.Contains(lower, "lon"), strings.Contains(lower, "lng"):
			hasLon = true
		case strings.Contains(lower, "date"), strings.Contains(lower, "time"), strings.Contains(lower, "day"):
			hasDate = true
		}
	}

	if hasLat && hasLon {
		return models.ChartMap
	}

	numeric, categorical := sniffColumnKinds(data)
	if hasDate && numeric {
		return models.ChartLine
	}
	if categorical && numeric {
		return models.ChartBar
	}

	return models.ChartNone
}

// sniffColumnKinds inspects the first row's values: warehouse drivers
// return typed values, so a string is a category and a number is a metric.
func sniffColumnKinds(data *models.TabularData) (numeric, categorical bool) {
	first := data.Rows[0]
	for _, col := range data.Columns {
		lower := strings.ToLower(col)
		// Coordinates are not chartable metrics on their own.
		if strings.Contains(lower, "lat") || strings.Contains(lower, "lon") {
			continue
		}
		switch first[col].(type) {
		case int, int32, int64, float32, float64:
			numeric = true
		case string:
			categorical = true
		case time.Time:
			// Handled by the date-column name check.
		}
	}
	return numeric, categorical
}
