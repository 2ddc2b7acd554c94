package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedProperty is a user's bookmark of a property. The table carries a
// unique (user_id, property_id) constraint; a concurrent double-create is
// rejected by the database, not serialized here.
type SavedProperty struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	PropertyID uuid.UUID `json:"propertyId"`
	CreatedAt  time.Time `json:"createdAt"`
}
