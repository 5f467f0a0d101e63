package catalog

import (
	"context"
	"fmt"

	"github.com/quickpick/storefront/internal/domain/entities"
	"github.com/quickpick/storefront/internal/domain/repositories"
	"github.com/quickpick/storefront/internal/infrastructure/clients/catalogapi"
	apperrors "github.com/quickpick/storefront/pkg/errors"
)

// APIAdapter implements ProductRepository against an upstream
// product-listing endpoint. Selected when CATALOG_SOURCE=api.
type APIAdapter struct {
	client catalogapi.Client
}

// NewAPIAdapter creates a new upstream catalog adapter
func NewAPIAdapter(client catalogapi.Client) repositories.ProductRepository {
	return &APIAdapter{client: client}
}

// List retrieves the full catalog from the upstream endpoint, preserving the
// upstream order as catalog order.
func (a *APIAdapter) List(ctx context.Context) ([]*entities.Product, error) {
	records, err := a.client.ListProducts(ctx)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to fetch product catalog", err)
	}

	products := make([]*entities.Product, 0, len(records))
	for _, r := range records {
		products = append(products, recordToProduct(r))
	}
	return products, nil
}

// GetByID retrieves a product by ID from the upstream endpoint.
func (a *APIAdapter) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	record, err := a.client.GetProduct(ctx, id)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to fetch product", err)
	}
	return recordToProduct(*record), nil
}

// Create is not supported on the read-only upstream catalog.
func (a *APIAdapter) Create(ctx context.Context, product *entities.Product) error {
	return apperrors.NewValidationError(fmt.Sprintf("upstream catalog is read-only; cannot create product %s", product.ID))
}

func recordToProduct(r catalogapi.ProductRecord) *entities.Product {
	return &entities.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
	}
}
