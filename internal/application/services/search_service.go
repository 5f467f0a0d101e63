package services

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/quickpick/storefront/internal/domain/entities"
	"github.com/quickpick/storefront/internal/infrastructure/observability"
)

// SearchService matches submitted queries against the catalog snapshot and
// orchestrates the side effects of a submission: impression recording, search
// history, and metrics. Matching itself is pure; all side effects are
// best-effort and never change the result returned to the caller.
type SearchService struct {
	catalog      *CatalogService
	suggestions  *SuggestionService
	interactions *InteractionService
	history      *SearchHistoryService
	metrics      *observability.Metrics
}

// NewSearchService creates a new search service
func NewSearchService(
	catalog *CatalogService,
	suggestions *SuggestionService,
	interactions *InteractionService,
	history *SearchHistoryService,
	metrics *observability.Metrics,
) *SearchService {
	return &SearchService{
		catalog:      catalog,
		suggestions:  suggestions,
		interactions: interactions,
		history:      history,
		metrics:      metrics,
	}
}

// Tokenize lowercases and trims the raw query and splits it on whitespace
// runs. A blank query yields no tokens.
func Tokenize(raw string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
}

// Match runs the two-tier matcher over the given products, preserving their
// order in both tiers.
//
// A product is a direct match when its normalized name contains every query
// token as a substring. Related matches are the remaining products whose
// category equals the category of at least one direct match; products without
// a category never appear as related matches, and a direct match is never
// repeated in the related tier.
func (s *SearchService) Match(rawQuery string, products []*entities.Product) *entities.MatchResult {
	tokens := Tokenize(rawQuery)
	result := &entities.MatchResult{
		Query:   rawQuery,
		Tokens:  tokens,
		Direct:  []*entities.Product{},
		Related: []*entities.Product{},
	}
	if len(tokens) == 0 {
		return result
	}

	directIDs := make(map[string]struct{})
	for _, p := range products {
		name := p.NormalizedName()
		matched := true
		for _, token := range tokens {
			if !strings.Contains(name, token) {
				matched = false
				break
			}
		}
		if matched {
			result.Direct = append(result.Direct, p)
			directIDs[p.ID] = struct{}{}
		}
	}

	categories := make(map[string]struct{})
	for _, p := range result.Direct {
		if p.Category != "" {
			categories[p.Category] = struct{}{}
		}
	}

	for _, p := range products {
		if _, isDirect := directIDs[p.ID]; isDirect {
			continue
		}
		if p.Category == "" {
			continue
		}
		if _, ok := categories[p.Category]; ok {
			result.Related = append(result.Related, p)
		}
	}

	return result
}

// Submit handles a full search submission against the catalog snapshot. For a
// non-blank query it records one impression per related match, logs the query
// to search history, and computes post-submission suggestions. A blank query
// produces an empty result with no side effects.
func (s *SearchService) Submit(ctx context.Context, sess *entities.UserSession, rawQuery string) (*entities.MatchResult, []string) {
	ctx, span := observability.StartSpan(ctx, "SearchService.Submit")
	defer span.End()

	catalog := s.catalog.Products()
	result := s.Match(rawQuery, catalog)
	if len(result.Tokens) == 0 {
		return result, nil
	}

	observability.SetSpanAttributes(span,
		attribute.String("search.query", rawQuery),
		attribute.Int("search.direct_matches", len(result.Direct)),
		attribute.Int("search.related_matches", len(result.Related)),
	)
	if s.metrics != nil {
		observability.RecordSearchMetric(ctx, s.metrics, len(result.Combined()))
	}

	if s.interactions != nil {
		s.interactions.RecordImpressions(sess, result.Related)
	}
	if s.history != nil {
		s.history.Record(sess, rawQuery, len(result.Combined()))
	}

	var suggestions []string
	if s.suggestions != nil {
		suggestions = s.suggestions.ForResults(result.Tokens, catalog)
	}
	return result, suggestions
}
