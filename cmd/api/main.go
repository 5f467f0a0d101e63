package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quickpick/storefront/internal/adapters/cache"
	"github.com/quickpick/storefront/internal/adapters/catalog"
	"github.com/quickpick/storefront/internal/adapters/database"
	"github.com/quickpick/storefront/internal/adapters/events"
	"github.com/quickpick/storefront/internal/adapters/session"
	"github.com/quickpick/storefront/internal/api/handlers"
	"github.com/quickpick/storefront/internal/api/middleware"
	"github.com/quickpick/storefront/internal/api/routes"
	"github.com/quickpick/storefront/internal/application/services"
	"github.com/quickpick/storefront/internal/domain/providers"
	"github.com/quickpick/storefront/internal/domain/repositories"
	"github.com/quickpick/storefront/internal/infrastructure/clients/catalogapi"
	"github.com/quickpick/storefront/internal/infrastructure/clients/postgres"
	"github.com/quickpick/storefront/internal/infrastructure/clients/redis"
	"github.com/quickpick/storefront/internal/infrastructure/observability"
	"github.com/quickpick/storefront/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - sessions resolve as anonymous and
		// responses are served uncached
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	// Initialize adapters

	// Select the catalog source: the local database or an upstream
	// product-listing endpoint.
	var productRepo repositories.ProductRepository
	switch cfg.Catalog.Source {
	case "api":
		if cfg.Catalog.UpstreamURL == "" {
			log.Fatalf("CATALOG_SOURCE=api requires CATALOG_UPSTREAM_URL")
		}
		productRepo = catalog.NewAPIAdapter(catalogapi.NewClient(cfg.Catalog.UpstreamURL))
		log.Printf("Catalog source: upstream API at %s", cfg.Catalog.UpstreamURL)
	default:
		productRepo = database.NewProductAdapter(pgClient)
		log.Println("Catalog source: database")
	}

	interactionRepo := database.NewInteractionAdapter(pgClient)
	historyRepo := database.NewSearchHistoryAdapter(pgClient)

	var cacheProvider providers.CacheProvider
	var sessionRepo repositories.SessionRepository
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
		sessionRepo = session.NewRedisSessionAdapter(redisClient)
	}

	// Initialize event bus for live interaction streams
	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Println("Event bus initialized successfully")
	} else {
		log.Println("Event bus disabled (Redis not available)")
	}

	// Initialize services

	catalogService := services.NewCatalogService(productRepo)
	catalogService.Load(ctx)

	vocabulary, err := services.LoadVocabulary(cfg.Catalog.VocabularyPath)
	if err != nil {
		log.Printf("Warning: %v; typing-time suggestions disabled", err)
	}
	suggestionService := services.NewSuggestionService(vocabulary)

	interactionService := services.NewInteractionService(interactionRepo, eventBus, metrics)
	historyService := services.NewSearchHistoryService(historyRepo)
	sessionService := services.NewSessionService(sessionRepo)

	searchService := services.NewSearchService(
		catalogService,
		suggestionService,
		interactionService,
		historyService,
		metrics,
	)

	// Initialize handlers

	productHandler := handlers.NewProductHandler(catalogService)
	searchHandler := handlers.NewSearchHandler(searchService, suggestionService, sessionService)
	interactionHandler := handlers.NewInteractionHandler(interactionService)
	historyHandler := handlers.NewSearchHistoryHandler(historyService)

	var sseHandler *handlers.SSEHandler
	if eventBus != nil {
		sseHandler = handlers.NewSSEHandler(eventBus)
	}

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		log.Println("Cache middleware initialized successfully")
	}

	// Set up router
	router := routes.NewRouter(
		productHandler,
		searchHandler,
		interactionHandler,
		historyHandler,
		sseHandler,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	// Close event bus
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Printf("Error closing event bus: %v", err)
		}
	}

	log.Println("Server stopped")
}
