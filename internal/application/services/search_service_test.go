package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickpick/storefront/internal/domain/entities"
)

type stubProductRepo struct {
	products []*entities.Product
	err      error
}

func (r *stubProductRepo) List(ctx context.Context) ([]*entities.Product, error) {
	return r.products, r.err
}

func (r *stubProductRepo) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *stubProductRepo) Create(ctx context.Context, product *entities.Product) error {
	return nil
}

type mockInteractionRepo struct {
	mu     sync.Mutex
	events []*entities.InteractionEvent
	err    error
}

func (m *mockInteractionRepo) LogEvent(ctx context.Context, event *entities.InteractionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	copied := *event
	m.events = append(m.events, &copied)
	return nil
}

func (m *mockInteractionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entities.InteractionEvent, error) {
	return nil, nil
}

func (m *mockInteractionRepo) Events() []*entities.InteractionEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entities.InteractionEvent, len(m.events))
	copy(out, m.events)
	return out
}

type mockHistoryRepo struct {
	mu      sync.Mutex
	entries []*entities.SearchHistoryEntry
	err     error
}

func (m *mockHistoryRepo) LogEntry(ctx context.Context, entry *entities.SearchHistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	copied := *entry
	m.entries = append(m.entries, &copied)
	return nil
}

func (m *mockHistoryRepo) GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchHistoryEntry, error) {
	return nil, nil
}

func (m *mockHistoryRepo) Entries() []*entities.SearchHistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entities.SearchHistoryEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func product(id, name, category string) *entities.Product {
	return &entities.Product{ID: id, Name: name, Category: category}
}

func testCatalog() []*entities.Product {
	return []*entities.Product{
		product("p1", "Green Apple", "fruit"),
		product("p2", "Red Apple", "fruit"),
		product("p3", "Apple Juice", "beverages"),
		product("p4", "Banana", "fruit"),
		product("p5", "Orange Juice", "beverages"),
		product("p6", "Gift Card", ""),
	}
}

func loadedCatalog(t *testing.T, products []*entities.Product) *CatalogService {
	t.Helper()
	catalog := NewCatalogService(&stubProductRepo{products: products})
	catalog.Load(context.Background())
	return catalog
}

func productIDs(products []*entities.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"green", "apple"}, Tokenize("  Green   APPLE "))
	assert.Empty(t, Tokenize("   "))
	assert.Empty(t, Tokenize(""))
}

func TestMatch_DirectRequiresAllTokens(t *testing.T) {
	svc := &SearchService{}

	result := svc.Match("green apple", testCatalog())

	assert.Equal(t, []string{"p1"}, productIDs(result.Direct))
}

func TestMatch_RelatedByCategoryClosure(t *testing.T) {
	svc := &SearchService{}

	result := svc.Match("apple", testCatalog())

	// Direct: every name containing "apple", in catalog order.
	assert.Equal(t, []string{"p1", "p2", "p3"}, productIDs(result.Direct))
	// Related: rest of the fruit and beverages categories. The uncategorized
	// gift card never appears.
	assert.Equal(t, []string{"p4", "p5"}, productIDs(result.Related))
}

func TestMatch_DirectMatchNeverRepeatedAsRelated(t *testing.T) {
	svc := &SearchService{}

	result := svc.Match("apple", testCatalog())

	direct := make(map[string]struct{})
	for _, p := range result.Direct {
		direct[p.ID] = struct{}{}
	}
	for _, p := range result.Related {
		_, dup := direct[p.ID]
		assert.False(t, dup, "product %s appears in both tiers", p.ID)
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	svc := &SearchService{}

	upper := svc.Match("APPLE", testCatalog())
	lower := svc.Match("apple", testCatalog())

	assert.Equal(t, productIDs(lower.Direct), productIDs(upper.Direct))
	assert.Equal(t, productIDs(lower.Related), productIDs(upper.Related))
}

func TestMatch_BlankQuery(t *testing.T) {
	svc := &SearchService{}

	result := svc.Match("   ", testCatalog())

	assert.Empty(t, result.Tokens)
	assert.Empty(t, result.Direct)
	assert.Empty(t, result.Related)
	assert.True(t, result.IsEmpty())
}

func TestMatch_NoDirectMeansNoRelated(t *testing.T) {
	svc := &SearchService{}

	result := svc.Match("durian", testCatalog())

	assert.Empty(t, result.Direct)
	assert.Empty(t, result.Related)
}

func TestMatch_Deterministic(t *testing.T) {
	svc := &SearchService{}
	catalog := testCatalog()

	first := svc.Match("juice", catalog)
	second := svc.Match("juice", catalog)

	assert.Equal(t, productIDs(first.Direct), productIDs(second.Direct))
	assert.Equal(t, productIDs(first.Related), productIDs(second.Related))
}

func newSubmitFixture(t *testing.T) (*SearchService, *mockInteractionRepo, *mockHistoryRepo) {
	t.Helper()
	interactionRepo := &mockInteractionRepo{}
	historyRepo := &mockHistoryRepo{}
	svc := NewSearchService(
		loadedCatalog(t, testCatalog()),
		NewSuggestionService(nil),
		NewInteractionService(interactionRepo, nil, nil),
		NewSearchHistoryService(historyRepo),
		nil,
	)
	return svc, interactionRepo, historyRepo
}

func TestSubmit_EmitsOneImpressionPerRelatedMatch(t *testing.T) {
	svc, interactionRepo, _ := newSubmitFixture(t)
	sess := &entities.UserSession{UserID: "user-1"}

	result, _ := svc.Submit(context.Background(), sess, "apple")
	require.Len(t, result.Related, 2)

	assert.Eventually(t, func() bool {
		return len(interactionRepo.Events()) == 2
	}, time.Second, 10*time.Millisecond)

	seen := make(map[string]int)
	for _, e := range interactionRepo.Events() {
		assert.Equal(t, entities.ActionImpression, e.Action)
		assert.Equal(t, 0, e.CTR)
		assert.Equal(t, "user-1", e.UserID)
		seen[e.ProductID]++
	}
	assert.Equal(t, map[string]int{"p4": 1, "p5": 1}, seen)
}

func TestSubmit_AnonymousSessionRecordsNothing(t *testing.T) {
	svc, interactionRepo, historyRepo := newSubmitFixture(t)

	result, _ := svc.Submit(context.Background(), nil, "apple")
	require.NotEmpty(t, result.Direct)

	// Side effects are fire-and-forget; give any stray goroutine a moment.
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, interactionRepo.Events())
	assert.Empty(t, historyRepo.Entries())
}

func TestSubmit_BlankQueryHasNoSideEffects(t *testing.T) {
	svc, interactionRepo, historyRepo := newSubmitFixture(t)
	sess := &entities.UserSession{UserID: "user-1"}

	result, suggestions := svc.Submit(context.Background(), sess, "   ")

	assert.True(t, result.IsEmpty())
	assert.Empty(t, suggestions)
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, interactionRepo.Events())
	assert.Empty(t, historyRepo.Entries())
}

func TestSubmit_RecordsHistoryWithCombinedCount(t *testing.T) {
	svc, _, historyRepo := newSubmitFixture(t)
	sess := &entities.UserSession{UserID: "user-1"}

	svc.Submit(context.Background(), sess, "  apple ")

	assert.Eventually(t, func() bool {
		return len(historyRepo.Entries()) == 1
	}, time.Second, 10*time.Millisecond)

	entry := historyRepo.Entries()[0]
	assert.Equal(t, "user-1", entry.UserID)
	assert.Equal(t, "apple", entry.SearchQuery)
	assert.Equal(t, 5, entry.ResultCount) // 3 direct + 2 related
}

func TestSubmit_ZeroResultQueryStillRecordedToHistory(t *testing.T) {
	svc, interactionRepo, historyRepo := newSubmitFixture(t)
	sess := &entities.UserSession{UserID: "user-1"}

	result, _ := svc.Submit(context.Background(), sess, "durian")
	assert.True(t, result.IsEmpty())

	assert.Eventually(t, func() bool {
		return len(historyRepo.Entries()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, historyRepo.Entries()[0].ResultCount)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, interactionRepo.Events())
}

func TestSubmit_SuggestionsMatchAnySingleToken(t *testing.T) {
	svc, _, _ := newSubmitFixture(t)

	// "green juice" has no direct match, but each token alone matches names.
	result, suggestions := svc.Submit(context.Background(), nil, "green juice")

	assert.Empty(t, result.Direct)
	assert.Equal(t, []string{"green apple", "apple juice", "orange juice"}, suggestions)
}
