package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldsight-ai/coldsight-engine/pkg/glossary"
	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

func TestFormatHistory(t *testing.T) {
	history := []models.ConversationTurn{
		{Role: models.RoleUser, Content: "first"},
		{Role: models.RoleAssistant, Content: "second"},
		{Role: models.RoleUser, Content: "third"},
	}

	t.Run("empty history", func(t *testing.T) {
		assert.Equal(t, "(none)", FormatHistory(nil, 6))
	})

	t.Run("zero window", func(t *testing.T) {
		assert.Equal(t, "(none)", FormatHistory(history, 0))
	})

	t.Run("full transcript", func(t *testing.T) {
		got := FormatHistory(history, 6)
		assert.Equal(t, "User: first\nAssistant: second\nUser: third\n", got)
	})

	t.Run("window keeps most recent", func(t *testing.T) {
		got := FormatHistory(history, 2)
		assert.NotContains(t, got, "first")
		assert.Contains(t, got, "second")
		assert.Contains(t, got, "third")
	})
}

func TestBuildRouterPrompt(t *testing.T) {
	prompt := BuildRouterPrompt("상하이행 물동량 알려줘")

	for _, token := range []string{"SQL_AGENT", "RETRIEVAL_AGENT", "GENERAL_AGENT"} {
		assert.Contains(t, prompt, token)
	}
	assert.Contains(t, prompt, "상하이행 물동량 알려줘")
	assert.True(t, strings.HasSuffix(prompt, "Agent:"))
}

func TestBuildSQLGenerationPrompt(t *testing.T) {
	codes := []glossary.LocationCode{
		{Code: "CNSHG", Variants: []string{"Shanghai", "상하이"}},
		{Code: "KRPUS", Variants: []string{"Busan", "부산"}},
	}
	history := []models.ConversationTurn{
		{Role: models.RoleUser, Content: "지난주 파손율은?"},
	}

	prompt := BuildSQLGenerationPrompt("proj.coldchain", codes, "상하이행은?", history, 6)

	// All four analytical tables with the dataset qualifier.
	for _, table := range []string{"mart_logistics_master", "mart_sensor_detail", "mart_risk_heatmap", "mart_quality_matrix"} {
		assert.Contains(t, prompt, "proj.coldchain."+table)
	}

	// Location mapping lines.
	assert.Contains(t, prompt, "Shanghai, 상하이 -> 'CNSHG'")
	assert.Contains(t, prompt, "Busan, 부산 -> 'KRPUS'")

	// Metric disambiguation and clarification contract.
	assert.Contains(t, prompt, "출발 물동량")
	assert.Contains(t, prompt, "운송 물동량")
	assert.Contains(t, prompt, ClarificationSentinel)

	// History window and question placement.
	assert.Contains(t, prompt, "User: 지난주 파손율은?")
	assert.True(t, strings.HasSuffix(prompt, "SQL Query:"))
}

func TestBuildSynthesisPrompt(t *testing.T) {
	prompt := BuildSynthesisPrompt("몇 건?", "SELECT COUNT(*) AS cnt FROM t", "cnt\n42\n")

	assert.Contains(t, prompt, "몇 건?")
	assert.Contains(t, prompt, "SELECT COUNT(*) AS cnt FROM t")
	assert.Contains(t, prompt, "cnt\n42\n")
	assert.Contains(t, prompt, "Never state that data is missing")
}

func TestBuildRetrievalPrompt(t *testing.T) {
	entries := []models.GlossaryEntry{
		{Term: "일탈률", Definition: "임계값을 벗어난 비율"},
	}
	prompt := BuildRetrievalPrompt("일탈률이 뭐야?", entries)

	assert.Contains(t, prompt, "### 일탈률")
	assert.Contains(t, prompt, "임계값을 벗어난 비율")
	assert.Contains(t, prompt, "일탈률이 뭐야?")
	assert.Contains(t, prompt, "ONLY")
}

func TestBuildGeneralPrompt(t *testing.T) {
	prompt := BuildGeneralPrompt("안녕", nil, 10)

	assert.Contains(t, prompt, "안녕")
	assert.Contains(t, prompt, "(none)")
	assert.Contains(t, prompt, "NEVER fabricate statistics")
}

func TestTableInfo(t *testing.T) {
	info := TableInfo("proj.coldchain")

	assert.Contains(t, info, "`proj.coldchain.mart_logistics_master`")
	assert.Contains(t, info, "arrival_date")
	assert.Contains(t, info, "shock_g")
}
