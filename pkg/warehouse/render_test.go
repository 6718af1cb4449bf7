package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

func TestRenderText(t *testing.T) {
	tests := []struct {
		name string
		data *models.TabularData
		want string
	}{
		{"nil", nil, "(empty)"},
		{"no columns no rows", &models.TabularData{}, "(empty)"},
		{
			"columns only",
			&models.TabularData{Columns: []string{"cnt"}},
			"cnt\n",
		},
		{
			"single row",
			&models.TabularData{
				Columns: []string{"destination_code", "cnt"},
				Rows:    []map[string]any{{"destination_code": "CNSHG", "cnt": int64(42)}},
			},
			"destination_code\tcnt\nCNSHG\t42\n",
		},
		{
			"missing value renders NULL",
			&models.TabularData{
				Columns: []string{"a", "b"},
				Rows:    []map[string]any{{"a": 1}},
			},
			"a\tb\n1\tNULL\n",
		},
		{
			"nil value renders NULL",
			&models.TabularData{
				Columns: []string{"a"},
				Rows:    []map[string]any{{"a": nil}},
			},
			"a\nNULL\n",
		},
		{
			"column order preserved over map order",
			&models.TabularData{
				Columns: []string{"z", "a"},
				Rows:    []map[string]any{{"a": "second", "z": "first"}},
			},
			"z\ta\nfirst\tsecond\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderText(tt.data))
		})
	}
}

func TestRenderText_Deterministic(t *testing.T) {
	data := &models.TabularData{
		Columns: []string{"route", "rate"},
		Rows: []map[string]any{
			{"route": "CNSHG-KRPUS", "rate": 3.2},
			{"route": "JPOSA-KRICN", "rate": 1.1},
		},
	}

	first := RenderText(data)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, RenderText(data))
	}
}
