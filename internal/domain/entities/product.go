package entities

import (
	"strings"
	"time"
)

// Product represents a single catalog item. Products are immutable for the
// lifetime of a session: the catalog is loaded once at startup and never
// mutated afterwards.
type Product struct {
	ID          string    `json:"_id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Category    string    `json:"category,omitempty" db:"category"`
	Image       string    `json:"image" db:"image"`
	CreatedAt   time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// NormalizedName returns the lowercased product name used for matching.
// A missing name normalizes to the empty string, which can never contain a
// non-empty keyword.
func (p *Product) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(p.Name))
}
