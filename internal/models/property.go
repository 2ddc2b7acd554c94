package models

import (
	"time"

	"github.com/google/uuid"
)

type ListingStatus string

const (
	ListingActive    ListingStatus = "ACTIVE"
	ListingSold      ListingStatus = "SOLD"
	ListingArchived  ListingStatus = "ARCHIVED"
	ListingPending   ListingStatus = "PENDING"
	ListingOffMarket ListingStatus = "OFF_MARKET"
	ListingDraft     ListingStatus = "DRAFT"
)

// PropertyDetails is the semi-structured details bag stored as JSONB.
// Numeric facts live here rather than in dedicated columns.
type PropertyDetails struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price,omitempty"`
	SqFt        float64  `json:"sqFt,omitempty"`
	Bedrooms    int      `json:"bedrooms,omitempty"`
	Bathrooms   float64  `json:"bathrooms,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}

type Property struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	ProjectID     *uuid.UUID      `json:"projectId"`
	StreetAddress string          `json:"streetAddress"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	ZipCode       string          `json:"zipcode"`
	Locality      string          `json:"locality"`
	Latitude      *float64        `json:"latitude"`
	Longitude     *float64        `json:"longitude"`
	PropertyType  string          `json:"propertyType"`
	Details       PropertyDetails `json:"details"`
	ImageURLs     []string        `json:"imageUrls"`
	ThumbnailURL  *string         `json:"thumbnailUrl"`
	ListingStatus ListingStatus   `json:"listingStatus"`
	SoldTo        *uuid.UUID      `json:"soldTo"`
	SoldDate      *time.Time      `json:"soldDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
