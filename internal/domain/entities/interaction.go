package entities

import (
	"time"
)

// InteractionAction enumerates the user actions the storefront records.
type InteractionAction string

const (
	ActionImpression InteractionAction = "impression"
	ActionClick      InteractionAction = "click"
	ActionAddToCart  InteractionAction = "add_to_cart"
)

// Valid reports whether the action is one the pipeline accepts.
func (a InteractionAction) Valid() bool {
	switch a {
	case ActionImpression, ActionClick, ActionAddToCart:
		return true
	}
	return false
}

// CTR returns the click-through value recorded with the action: 1 for a
// click, 0 for everything else.
func (a InteractionAction) CTR() int {
	if a == ActionClick {
		return 1
	}
	return 0
}

// InteractionEvent represents a single recorded user interaction. Events are
// created at the moment of the triggering action and never mutated.
type InteractionEvent struct {
	ID        string            `json:"id" db:"id"`
	UserID    string            `json:"user_id" db:"user_id"`
	ProductID string            `json:"product_id" db:"product_id"`
	Action    InteractionAction `json:"action" db:"action"`
	CTR       int               `json:"ctr" db:"ctr"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}
