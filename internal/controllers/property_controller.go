package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/thegrihome/grihome-api/internal/config"
	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/middleware"
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/repositories"
	"github.com/thegrihome/grihome-api/internal/services"
	"github.com/thegrihome/grihome-api/internal/utils"
)

// searchMaxLimit caps the properties search page size. The projects listing
// deliberately carries no such cap; do not unify the two.
const searchMaxLimit = 50

type PropertyController struct {
	propertyService services.PropertyService
	debug           bool
}

func NewPropertyController(propertyService services.PropertyService, cfg *config.Config) *PropertyController {
	return &PropertyController{propertyService: propertyService, debug: cfg.Debug()}
}

func (c *PropertyController) Search(w http.ResponseWriter, r *http.Request) {
	page, limit, _ := utils.ParsePageQuery(r, searchMaxLimit)
	filter := buildPropertyFilter(r)

	props, pagination, err := c.propertyService.Search(r.Context(), filter, page, limit)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.PropertySearchResponse{
		Properties: derefProperties(props),
		Pagination: pagination,
	})
}

// buildPropertyFilter copies only present, non-empty query parameters into
// the filter. Numeric params parse with ParseFloat; unparseable values flow
// through as NaN rather than being rejected.
func buildPropertyFilter(r *http.Request) repositories.PropertyFilter {
	var f repositories.PropertyFilter

	q := r.URL.Query()
	setString := func(dst **string, name string) {
		if v := q.Get(name); v != "" {
			*dst = &v
		}
	}
	setString(&f.City, "city")
	setString(&f.State, "state")
	setString(&f.ZipCode, "zipcode")
	setString(&f.Locality, "locality")
	setString(&f.PropertyType, "propertyType")

	setFloat := func(dst **float64, name string) {
		if v, ok := utils.FloatQuery(r, name); ok {
			*dst = &v
		}
	}
	setFloat(&f.MinPrice, "minPrice")
	setFloat(&f.MaxPrice, "maxPrice")
	setFloat(&f.MinSqFt, "minSqft")
	setFloat(&f.Bedrooms, "bedrooms")
	setFloat(&f.Bathrooms, "bathrooms")

	if v := q.Get("status"); v != "" {
		status := models.ListingStatus(v)
		f.Status = &status
	} else {
		status := models.ListingActive
		f.Status = &status
	}
	return f
}

func (c *PropertyController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondMessage(w, http.StatusNotFound, "Property not found")
		return
	}

	p, err := c.propertyService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrPropertyNotFound) {
			utils.RespondMessage(w, http.StatusNotFound, "Property not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]models.Property{"property": *p})
}

func (c *PropertyController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	if req.StreetAddress == "" || req.PropertyType == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	p, err := c.propertyService.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, utils.ErrUploadFailed) {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to upload images or PDF", err, c.debug)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.PropertyResponse{
		Message:  "Property created successfully",
		Property: *p,
	})
}

func (c *PropertyController) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	propertyID, ok := requirePropertyID(w, req.PropertyID)
	if !ok {
		return
	}

	favorited, err := c.propertyService.ToggleFavorite(r.Context(), userID, propertyID)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrPropertyNotFound):
			utils.RespondMessage(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, utils.ErrOwnProperty):
			utils.RespondMessage(w, http.StatusForbidden, "You cannot favorite your own property")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		}
		return
	}

	msg := "Property removed from favorites"
	if favorited {
		msg = "Property added to favorites"
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ToggleFavoriteResponse{
		Message:     msg,
		IsFavorited: favorited,
	})
}

func (c *PropertyController) Favorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	props, err := c.propertyService.ListFavorites(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.FavoritesResponse{Properties: derefProperties(props)})
}

func (c *PropertyController) Archive(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.ArchivePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	propertyID, ok := requirePropertyID(w, req.PropertyID)
	if !ok {
		return
	}

	archived := true
	if req.IsArchived != nil {
		archived = *req.IsArchived
	}

	p, err := c.propertyService.Archive(r.Context(), userID, propertyID, archived)
	if err != nil {
		c.respondLifecycleError(w, err, "archive")
		return
	}

	msg := "Property restored successfully"
	if archived {
		msg = "Property archived successfully"
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.PropertyResponse{Message: msg, Property: *p})
}

func (c *PropertyController) MarkSold(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.MarkSoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	propertyID, ok := requirePropertyID(w, req.PropertyID)
	if !ok {
		return
	}
	if req.SoldTo == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "SoldTo is required")
		return
	}
	soldTo, err := uuid.Parse(req.SoldTo)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid soldTo", err, c.debug)
		return
	}

	p, err := c.propertyService.MarkSold(r.Context(), userID, propertyID, soldTo)
	if err != nil {
		if errors.Is(err, utils.ErrPropertyNotActive) {
			utils.RespondMessage(w, http.StatusBadRequest, "Only active properties can be marked as sold")
			return
		}
		c.respondLifecycleError(w, err, "mark sold")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.PropertyResponse{
		Message:  "Property marked as sold successfully",
		Property: *p,
	})
}

func (c *PropertyController) Reactivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.ReactivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	propertyID, ok := requirePropertyID(w, req.PropertyID)
	if !ok {
		return
	}

	p, err := c.propertyService.Reactivate(r.Context(), userID, propertyID)
	if err != nil {
		if errors.Is(err, utils.ErrPropertyNotArchived) {
			utils.RespondMessage(w, http.StatusBadRequest, "Only archived properties can be reactivated")
			return
		}
		c.respondLifecycleError(w, err, "reactivate")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.PropertyResponse{
		Message:  "Property reactivated successfully",
		Property: *p,
	})
}

func (c *PropertyController) Interest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.InterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	propertyID, ok := requirePropertyID(w, req.PropertyID)
	if !ok {
		return
	}

	interest, err := c.propertyService.RecordInterest(r.Context(), userID, propertyID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrPropertyNotFound):
			utils.RespondMessage(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, utils.ErrOwnProperty):
			utils.RespondMessage(w, http.StatusForbidden, "You cannot express interest in your own property")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.InterestResponse{
		Message:  "Interest recorded successfully",
		Interest: *interest,
	})
}

func (c *PropertyController) respondLifecycleError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, utils.ErrPropertyNotFound):
		utils.RespondMessage(w, http.StatusNotFound, "Property not found")
	case errors.Is(err, utils.ErrNotOwner):
		utils.RespondMessage(w, http.StatusForbidden, "You can only "+action+" your own properties")
	default:
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
	}
}

// requirePropertyID enforces the shared "PropertyID is required" gate and
// parses the id. An unparseable id reads as a missing record, not a 400.
func requirePropertyID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	if raw == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "PropertyID is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondMessage(w, http.StatusNotFound, "Property not found")
		return uuid.Nil, false
	}
	return id, true
}

func derefProperties(in []*models.Property) []models.Property {
	out := make([]models.Property, 0, len(in))
	for _, p := range in {
		out = append(out, *p)
	}
	return out
}
