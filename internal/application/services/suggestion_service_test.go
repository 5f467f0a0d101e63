package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search_suggestions.json")
	content := `{"queries": ["fresh apples", "apple juice", "bananas"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	vocab, err := LoadVocabulary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh apples", "apple juice", "bananas"}, vocab)
}

func TestLoadVocabulary_Missing(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestForTyping_MatchesWholePartialQuery(t *testing.T) {
	svc := NewSuggestionService([]string{"fresh apples", "apple juice", "green grapes"})

	// The partial query is matched as one string, not token by token:
	// "apple j" only matches entries containing that exact substring.
	assert.Equal(t, []string{"apple juice"}, svc.ForTyping("apple j"))
	assert.Equal(t, []string{"fresh apples", "apple juice"}, svc.ForTyping("APPLE"))
	assert.Empty(t, svc.ForTyping("apples juice"))
}

func TestForTyping_BlankQuery(t *testing.T) {
	svc := NewSuggestionService([]string{"fresh apples"})

	assert.Empty(t, svc.ForTyping(""))
	assert.Empty(t, svc.ForTyping("   "))
}

func TestForResults_MatchesAnyToken(t *testing.T) {
	svc := NewSuggestionService(nil)

	got := svc.ForResults([]string{"green", "juice"}, testCatalog())

	assert.Equal(t, []string{"green apple", "apple juice", "orange juice"}, got)
}

func TestForResults_NoTokens(t *testing.T) {
	svc := NewSuggestionService(nil)

	assert.Empty(t, svc.ForResults(nil, testCatalog()))
}
