package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, store.Entries)
	assert.NotEmpty(t, store.LocationCodes)

	// Every entry must carry both a term and a definition.
	for _, entry := range store.Entries {
		assert.NotEmpty(t, entry.Term)
		assert.NotEmpty(t, entry.Definition)
	}
}

func TestLoad_LocationCodes(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	codes := make(map[string]bool)
	for _, lc := range store.LocationCodes {
		codes[lc.Code] = true
		assert.NotEmpty(t, lc.Variants, "code %s has no variants", lc.Code)
	}

	for _, want := range []string{"CNSHG", "JPOSA", "CNRZH", "CNLYG", "CNNBG", "VNSGN", "VNHPH", "KRICN", "KRPUS"} {
		assert.True(t, codes[want], "missing location code %s", want)
	}
}

func TestMatch(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name     string
		question string
		want     []string
	}{
		{"exact term", "일탈률이 뭐야?", []string{"일탈률"}},
		{"alias", "이탈률 기준 알려줘", []string{"일탈률"}},
		{"extra whitespace", "동절기   운송   지침 설명해줘", []string{"동절기 운송 지침"}},
		{"case insensitive english alias", "What does DEVIATION RATE mean?", []string{"일탈률"}},
		{"no match", "연차 휴가 규정", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := store.Match(tt.question)
			var terms []string
			for _, entry := range matched {
				terms = append(terms, entry.Term)
			}
			assert.Equal(t, tt.want, terms)
		})
	}
}

func TestMatch_MultipleTerms(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	matched := store.Match("일탈률과 피로도의 차이가 뭐야?")

	var terms []string
	for _, entry := range matched {
		terms = append(terms, entry.Term)
	}
	assert.Contains(t, terms, "일탈률")
	assert.Contains(t, terms, "피로도")
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Damage Rate", "damagerate"},
		{"damage rates", "damagerate"},
		{"온도  이탈", "온도이탈"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalize(tt.in))
	}
}
