// Package glossary holds the static business glossary and the location
// code map. Both are embedded reference data: loaded once at process
// start, never mutated.
package glossary

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
	"gopkg.in/yaml.v3"

	"github.com/coldsight-ai/coldsight-engine/pkg/models"
)

//go:embed data/glossary.yaml
var glossaryYAML []byte

// LocationCode maps a canonical location code to its known spelling
// variants (phonetic, romanized, localized).
type LocationCode struct {
	Code     string   `yaml:"code"`
	Variants []string `yaml:"variants"`
}

// Store is the loaded glossary plus the location code map.
type Store struct {
	Entries       []models.GlossaryEntry
	LocationCodes []LocationCode
}

type glossaryFile struct {
	Glossary      []models.GlossaryEntry `yaml:"glossary"`
	LocationCodes []LocationCode         `yaml:"location_codes"`
}

// Load parses the embedded glossary data.
func Load() (*Store, error) {
	var file glossaryFile
	if err := yaml.Unmarshal(glossaryYAML, &file); err != nil {
		return nil, fmt.Errorf("parse glossary data: %w", err)
	}
	if len(file.Glossary) == 0 {
		return nil, fmt.Errorf("glossary data is empty")
	}
	return &Store{
		Entries:       file.Glossary,
		LocationCodes: file.LocationCodes,
	}, nil
}

// Match returns the glossary entries whose term or one of its aliases
// appears in the question. Matching is a whitespace-insensitive,
// case-insensitive substring check; English aliases also match their
// singular form so "rates" finds "rate".
func (s *Store) Match(question string) []models.GlossaryEntry {
	normalized := normalize(question)

	var matched []models.GlossaryEntry
	for _, entry := range s.Entries {
		if containsTerm(normalized, entry.Term) {
			matched = append(matched, entry)
			continue
		}
		for _, alias := range entry.Aliases {
			if containsTerm(normalized, alias) {
				matched = append(matched, entry)
				break
			}
		}
	}
	return matched
}

func containsTerm(normalizedQuestion, term string) bool {
	return strings.Contains(normalizedQuestion, normalize(term))
}

// normalize lowercases, singularizes English plurals per word so "rates"
// still finds "rate", then strips all whitespace so spacing differences
// don't defeat the substring check.
func normalize(s string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(strings.ToLower(s)) {
		if isASCIIWord(word) {
			word = inflection.Singular(word)
		}
		sb.WriteString(word)
	}
	return sb.String()
}

func isASCIIWord(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
