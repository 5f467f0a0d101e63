package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/quickpick/storefront/internal/adapters/database"
	"github.com/quickpick/storefront/internal/domain/entities"
	"github.com/quickpick/storefront/internal/infrastructure/clients/postgres"
	"github.com/quickpick/storefront/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	productRepo := database.NewProductAdapter(pgClient)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				user_interactions,
				search_history,
				products
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	now := time.Now()
	products := []entities.Product{
		{ID: uuid.New().String(), Name: "Green Apple", Description: "Crisp and tart, sold per lb", Price: 1.99, Category: "fruits", Image: "/images/green-apple.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Red Apple", Description: "Sweet red apples, sold per lb", Price: 2.19, Category: "fruits", Image: "/images/red-apple.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Banana", Description: "Ripe bananas by the bunch", Price: 0.79, Category: "fruits", Image: "/images/banana.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Seedless Grapes", Description: "Green seedless grapes", Price: 3.49, Category: "fruits", Image: "/images/grapes.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Apple Juice", Description: "100% pressed apple juice, 1L", Price: 4.29, Category: "beverages", Image: "/images/apple-juice.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Orange Juice", Description: "Freshly squeezed, 1L", Price: 4.99, Category: "beverages", Image: "/images/orange-juice.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Sparkling Water", Description: "Lightly carbonated, 6-pack", Price: 5.49, Category: "beverages", Image: "/images/sparkling-water.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Whole Milk", Description: "Grade A whole milk, 1 gallon", Price: 3.99, Category: "dairy", Image: "/images/whole-milk.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Greek Yogurt", Description: "Plain Greek yogurt, 32oz", Price: 5.99, Category: "dairy", Image: "/images/greek-yogurt.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Cheddar Cheese", Description: "Sharp cheddar block, 8oz", Price: 4.49, Category: "dairy", Image: "/images/cheddar.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Sourdough Bread", Description: "Baked daily", Price: 4.79, Category: "bakery", Image: "/images/sourdough.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Apple Pie", Description: "Classic double-crust apple pie", Price: 8.99, Category: "bakery", Image: "/images/apple-pie.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Butter Croissant", Description: "Flaky all-butter croissant", Price: 2.49, Category: "bakery", Image: "/images/croissant.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Baby Spinach", Description: "Pre-washed baby spinach, 5oz", Price: 3.29, Category: "vegetables", Image: "/images/spinach.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Roma Tomatoes", Description: "Sold per lb", Price: 1.49, Category: "vegetables", Image: "/images/tomatoes.jpg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Yellow Onion", Description: "Sold per lb", Price: 0.99, Category: "vegetables", Image: "/images/onion.jpg", CreatedAt: now, UpdatedAt: now},
		// Gift card is intentionally uncategorized: it should never surface
		// as a related match.
		{ID: uuid.New().String(), Name: "Gift Card", Description: "Store gift card", Price: 25.00, Image: "/images/gift-card.jpg", CreatedAt: now, UpdatedAt: now},
	}

	for _, p := range products {
		if err := productRepo.Create(ctx, &p); err != nil {
			log.Printf("Failed to create product %s: %v", p.Name, err)
		}
	}

	log.Printf("Seeded %d products", len(products))
}
