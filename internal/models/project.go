package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Builder     string    `json:"builder"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Locality    string    `json:"locality"`
	ImageURLs   []string  `json:"imageUrls"`
	BrochureURL *string   `json:"brochureUrl"`
	IsArchived  bool      `json:"isArchived"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
