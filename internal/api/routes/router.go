package routes

import (
	"net/http"

	"github.com/quickpick/storefront/internal/api/handlers"
	"github.com/quickpick/storefront/internal/api/middleware"
	"github.com/quickpick/storefront/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	productHandler     *handlers.ProductHandler
	searchHandler      *handlers.SearchHandler
	interactionHandler *handlers.InteractionHandler
	historyHandler     *handlers.SearchHistoryHandler
	sseHandler         *handlers.SSEHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	productHandler *handlers.ProductHandler,
	searchHandler *handlers.SearchHandler,
	interactionHandler *handlers.InteractionHandler,
	historyHandler *handlers.SearchHistoryHandler,
	sseHandler *handlers.SSEHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		productHandler:     productHandler,
		searchHandler:      searchHandler,
		interactionHandler: interactionHandler,
		historyHandler:     historyHandler,
		sseHandler:         sseHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Catalog endpoints
	r.mux.HandleFunc("GET /api/products", r.productHandler.ListProducts)
	r.mux.HandleFunc("GET /api/products/{id}", r.productHandler.GetProduct)

	// Search endpoints
	r.mux.HandleFunc("GET /api/search", r.searchHandler.Search)
	r.mux.HandleFunc("GET /api/suggest", r.searchHandler.Suggest)

	// Interaction endpoints
	r.mux.HandleFunc("POST /api/user-interactions", r.interactionHandler.RecordInteraction)
	r.mux.HandleFunc("GET /api/users/{id}/interactions", r.interactionHandler.ListUserInteractions)

	// Search history endpoints
	r.mux.HandleFunc("POST /api/search-history", r.historyHandler.RecordSearchHistory)

	// Analytics endpoints
	r.mux.HandleFunc("GET /api/analytics/zero-result-queries", r.historyHandler.GetZeroResultQueries)

	// Live interaction stream
	if r.sseHandler != nil {
		r.mux.HandleFunc("GET /api/stream/interactions", r.sseHandler.StreamInteractions)
	}

	// Apply middleware in reverse order (last middleware wraps first)

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
