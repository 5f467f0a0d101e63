package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/quickpick/storefront/internal/domain/entities"
)

// SuggestionService produces the two suggestion variants the storefront
// shows: typing-time suggestions drawn from a static vocabulary, and
// post-submission suggestions drawn from the names of catalog products.
//
// The two variants deliberately use different matching rules: typing-time
// matches the whole partial query, post-submission matches any single token.
type SuggestionService struct {
	vocabulary []string
}

// NewSuggestionService creates a suggestion service over a fixed vocabulary.
func NewSuggestionService(vocabulary []string) *SuggestionService {
	return &SuggestionService{vocabulary: vocabulary}
}

type vocabularyFile struct {
	Queries []string `json:"queries"`
}

// LoadVocabulary reads the suggestion vocabulary from a JSON file of the form
// {"queries": ["...", ...]}.
func LoadVocabulary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suggestion vocabulary: %w", err)
	}
	var file vocabularyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion vocabulary: %w", err)
	}
	return file.Queries, nil
}

// ForTyping returns vocabulary entries containing the partial query as a
// whole, case-insensitively. The partial query is not tokenized; a blank
// query yields no suggestions.
func (s *SuggestionService) ForTyping(partial string) []string {
	needle := strings.ToLower(strings.TrimSpace(partial))
	if needle == "" {
		return nil
	}

	var matches []string
	for _, entry := range s.vocabulary {
		if strings.Contains(strings.ToLower(entry), needle) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// ForResults returns the normalized names of products matching at least one
// query token, in catalog order. Unlike direct matching, a single token
// hit is enough.
func (s *SuggestionService) ForResults(tokens []string, products []*entities.Product) []string {
	if len(tokens) == 0 {
		return nil
	}

	var matches []string
	for _, p := range products {
		name := p.NormalizedName()
		for _, token := range tokens {
			if strings.Contains(name, token) {
				matches = append(matches, name)
				break
			}
		}
	}
	return matches
}

// VocabularySize reports how many entries the typing-time vocabulary holds.
func (s *SuggestionService) VocabularySize() int {
	return len(s.vocabulary)
}
