package dtos

import (
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/utils"
)

// ----------------------------------------------------------------
// /api/properties/search
// ----------------------------------------------------------------

type PropertySearchResponse struct {
	Properties []models.Property `json:"properties"`
	Pagination utils.Pagination  `json:"pagination"`
}

// ----------------------------------------------------------------
// /api/properties/create
// ----------------------------------------------------------------

type CreatePropertyRequest struct {
	StreetAddress string                 `json:"streetAddress" validate:"required"`
	PropertyType  string                 `json:"propertyType" validate:"required"`
	ProjectID     *string                `json:"projectId"`
	Details       models.PropertyDetails `json:"details"`
	Images        []string               `json:"images"`
}

type PropertyResponse struct {
	Message  string          `json:"message"`
	Property models.Property `json:"property"`
}

// ----------------------------------------------------------------
// /api/properties/toggle-favorite
// ----------------------------------------------------------------

type ToggleFavoriteRequest struct {
	PropertyID string `json:"propertyId"`
}

type ToggleFavoriteResponse struct {
	Message     string `json:"message"`
	IsFavorited bool   `json:"isFavorited"`
}

// ----------------------------------------------------------------
// /api/properties/favorites
// ----------------------------------------------------------------

type FavoritesResponse struct {
	Properties []models.Property `json:"properties"`
}

// ----------------------------------------------------------------
// archive / mark-sold / reactivate
// ----------------------------------------------------------------

type ArchivePropertyRequest struct {
	PropertyID string `json:"propertyId"`
	// Omitted means archive; explicit false restores.
	IsArchived *bool `json:"isArchived"`
}

type MarkSoldRequest struct {
	PropertyID string `json:"propertyId"`
	SoldTo     string `json:"soldTo"`
}

type ReactivateRequest struct {
	PropertyID string `json:"propertyId"`
}

// ----------------------------------------------------------------
// /api/properties/interest
// ----------------------------------------------------------------

type InterestRequest struct {
	PropertyID string  `json:"propertyId"`
	Message    *string `json:"message"`
}

type InterestResponse struct {
	Message  string          `json:"message"`
	Interest models.Interest `json:"interest"`
}
