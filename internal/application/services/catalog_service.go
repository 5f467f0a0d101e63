package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/quickpick/storefront/internal/domain/entities"
	"github.com/quickpick/storefront/internal/domain/repositories"
)

// CatalogService holds the full product list fetched once at startup. The
// snapshot is read-only for the rest of the session: matching and suggestion
// always operate on the same sequence, so repeated submissions over an
// unchanged catalog are deterministic.
type CatalogService struct {
	repo repositories.ProductRepository

	once     sync.Once
	products []*entities.Product
	byID     map[string]*entities.Product
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Load populates the catalog snapshot. It runs at most once; a failed load
// leaves the catalog empty and is terminal for this session's search
// functionality — no retry, no error surfaced to callers.
func (s *CatalogService) Load(ctx context.Context) {
	s.once.Do(func() {
		products, err := s.repo.List(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to load product catalog; search will operate on an empty catalog")
			return
		}

		s.products = products
		s.byID = make(map[string]*entities.Product, len(products))
		for _, p := range products {
			s.byID[p.ID] = p
		}
		log.Info().Int("products", len(products)).Msg("product catalog loaded")
	})
}

// Products returns the catalog snapshot in catalog order. Callers must not
// mutate the returned slice.
func (s *CatalogService) Products() []*entities.Product {
	return s.products
}

// GetByID returns a product from the snapshot.
func (s *CatalogService) GetByID(id string) (*entities.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Len returns the number of products in the snapshot.
func (s *CatalogService) Len() int {
	return len(s.products)
}
