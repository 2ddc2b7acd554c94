package models

import (
	"time"

	"github.com/google/uuid"
)

// Interest is a buyer's recorded expression of interest in a property.
// Append-only, ordered by creation time.
type Interest struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	PropertyID uuid.UUID `json:"propertyId"`
	Message    *string   `json:"message,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
