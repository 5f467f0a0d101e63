package handlers

import (
	"net/http"

	"github.com/quickpick/storefront/internal/domain/entities"
)

// CatalogReader exposes the catalog snapshot to the handler.
type CatalogReader interface {
	Products() []*entities.Product
	GetByID(id string) (*entities.Product, bool)
}

// ProductHandler serves the product catalog. Responses come from the
// in-memory snapshot loaded at startup, so listing is stable for the lifetime
// of the process.
type ProductHandler struct {
	catalog CatalogReader
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog CatalogReader) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Products()
	if products == nil {
		products = []*entities.Product{}
	}
	respondWithJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "product ID is required")
		return
	}

	product, ok := h.catalog.GetByID(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	respondWithJSON(w, http.StatusOK, product)
}
