package repositories

import (
	"context"

	"github.com/quickpick/storefront/internal/domain/entities"
)

// ProductRepository defines the interface for product catalog retrieval.
// The catalog cache invokes List exactly once per session; implementations
// return the full catalog in stable order.
type ProductRepository interface {
	// List retrieves all products in catalog order
	List(ctx context.Context) ([]*entities.Product, error)

	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id string) (*entities.Product, error)

	// Create inserts a new product
	Create(ctx context.Context, product *entities.Product) error
}
