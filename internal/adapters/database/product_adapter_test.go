package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickpick/storefront/internal/adapters/database"
	"github.com/quickpick/storefront/internal/domain/entities"
	apperrors "github.com/quickpick/storefront/pkg/errors"
)

func TestProductAdapter_List(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := database.NewProductAdapter(client)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "category", "image", "created_at", "updated_at"}).
		AddRow("p1", "Red Apple", "Fresh apple", 1.5, "fruit", "apple.png", now, now).
		AddRow("p2", "Carrot", "Crunchy", 0.8, nil, "carrot.png", now, now)

	mock.ExpectQuery(`SELECT .+ FROM "products"`).
		WillReturnRows(rows)

	products, err := adapter.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Red Apple", products[0].Name)
	assert.Equal(t, "fruit", products[0].Category)
	// NULL category tolerated via empty-string fallback
	assert.Equal(t, "", products[1].Category)
}

func TestProductAdapter_GetByID_NotFound(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := database.NewProductAdapter(client)

	mock.ExpectQuery(`SELECT .+ FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "category", "image", "created_at", "updated_at"}))

	_, err := adapter.GetByID(context.Background(), "missing")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestProductAdapter_Create(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := database.NewProductAdapter(client)

	mock.ExpectExec(`INSERT INTO "products"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	now := time.Now().UTC()
	err := adapter.Create(context.Background(), &entities.Product{
		ID:          "p1",
		Name:        "Red Apple",
		Description: "Fresh apple",
		Price:       1.5,
		Category:    "fruit",
		Image:       "apple.png",
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
