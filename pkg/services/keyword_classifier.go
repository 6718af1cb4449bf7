package services

import (
	"strings"
	"unicode"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

// generalKeywords mark greetings and capability questions. Checked first:
// a greeting that happens to mention "data" is still a greeting.
var generalKeywords = []string{
	"안녕", "반가워", "고마워", "감사합니다", "누구야", "누구니", "소개",
	"할 수 있", "뭐 할", "뭘 할", "hello", "hi there", "thank", "what can you do", "who are you",
}

// sqlKeywords mark quantitative questions that need warehouse aggregation.
var sqlKeywords = []string{
	"count", "amount", "volume", "rate", "temperature", "humidity", "shock",
	"stats", "data", "how many", "percentage", "average", "top",
	"건수", "수량", "평균", "비율", "물동량", "온도", "습도", "충격", "파손",
	"얼마나", "몇 건", "몇건", "통계", "순위",
}

// ClassifyByKeywords is the deterministic fallback classifier. It is the
// permanent strategy when no LLM client is available and the per-request
// fallback when the LLM returns an unusable label.
//
// Priority: general keywords, then SQL keywords (including any token
// carrying a digit — shipment IDs and thresholds like "5G" imply a
// structured query), else retrieval.
func ClassifyByKeywords(question string) models.AgentLabel {
	lower := strings.ToLower(question)

	for _, kw := range generalKeywords {
		if strings.Contains(lower, kw) {
			return models.AgentGeneral
		}
	}

	for _, kw := range sqlKeywords {
		if strings.Contains(lower, kw) {
			return models.AgentSQL
		}
	}
	if containsDigit(lower) {
		return models.AgentSQL
	}

	return models.AgentRetrieval
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
