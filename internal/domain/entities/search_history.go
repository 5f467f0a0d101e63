package entities

import (
	"time"
)

// SearchHistoryEntry represents one submitted query, attributed to a known
// user. Anonymous submissions are never recorded.
type SearchHistoryEntry struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	SearchQuery string    `json:"search_query" db:"search_query"`
	ResultCount int       `json:"result_count" db:"result_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
