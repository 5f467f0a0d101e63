package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/quickpick/storefront/internal/domain/entities"
	"github.com/quickpick/storefront/internal/domain/repositories"
	"github.com/quickpick/storefront/internal/infrastructure/clients/postgres"
	apperrors "github.com/quickpick/storefront/pkg/errors"
)

// ProductAdapter implements product persistence in Postgres.
type ProductAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewProductAdapter creates a new product adapter.
func NewProductAdapter(client *postgres.Client) repositories.ProductRepository {
	return &ProductAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List retrieves all products. The ordering is the catalog order every match
// result preserves, so it must be stable across calls.
func (a *ProductAdapter) List(ctx context.Context) ([]*entities.Product, error) {
	query, args, err := a.db.From("products").
		Select("id", "name", "description", "price", "category", "image", "created_at", "updated_at").
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build product list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list products", err)
	}
	defer rows.Close()

	var products []*entities.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan product", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// GetByID retrieves a product by ID.
func (a *ProductAdapter) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	query, args, err := a.db.From("products").
		Select("id", "name", "description", "price", "category", "image", "created_at", "updated_at").
		Where(goqu.Ex{"id": id}).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build product query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get product", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}

	p, err := scanProduct(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan product", err)
	}
	return p, nil
}

// Create inserts a product record.
func (a *ProductAdapter) Create(ctx context.Context, product *entities.Product) error {
	if product == nil {
		return apperrors.NewInternalError("product is nil", fmt.Errorf("product is nil"))
	}

	record := goqu.Record{
		"id":          product.ID,
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"category":    sql.NullString{String: product.Category, Valid: product.Category != ""},
		"image":       product.Image,
		"created_at":  product.CreatedAt,
		"updated_at":  product.UpdatedAt,
	}

	query, args, err := a.db.Insert("products").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build product insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create product", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*entities.Product, error) {
	p := &entities.Product{}
	var category sql.NullString
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&category,
		&p.Image,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Category = category.String
	return p, nil
}
