package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/geo"
	"github.com/thegrihome/grihome-api/internal/metrics"
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/repositories"
	"github.com/thegrihome/grihome-api/internal/storage"
	"github.com/thegrihome/grihome-api/internal/utils"
)

type PropertyService interface {
	Search(ctx context.Context, f repositories.PropertyFilter, page, limit int) ([]*models.Property, utils.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Property, error)
	Create(ctx context.Context, userID uuid.UUID, req dtos.CreatePropertyRequest) (*models.Property, error)

	ToggleFavorite(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*models.Property, error)

	Archive(ctx context.Context, userID, propertyID uuid.UUID, archived bool) (*models.Property, error)
	MarkSold(ctx context.Context, userID, propertyID, soldTo uuid.UUID) (*models.Property, error)
	Reactivate(ctx context.Context, userID, propertyID uuid.UUID) (*models.Property, error)

	RecordInterest(ctx context.Context, userID, propertyID uuid.UUID, message *string) (*models.Interest, error)
	ListOwnerProperties(ctx context.Context, ownerID uuid.UUID) ([]dtos.UserProperty, error)
}

type propertyService struct {
	propertyRepo repositories.PropertyRepository
	savedRepo    repositories.SavedPropertyRepository
	interestRepo repositories.InterestRepository
	geocoder     geo.Geocoder
	uploader     storage.Uploader
}

func NewPropertyService(
	propertyRepo repositories.PropertyRepository,
	savedRepo repositories.SavedPropertyRepository,
	interestRepo repositories.InterestRepository,
	geocoder geo.Geocoder,
	uploader storage.Uploader,
) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		savedRepo:    savedRepo,
		interestRepo: interestRepo,
		geocoder:     geocoder,
		uploader:     uploader,
	}
}

// ----------------------------------------------------------------
// Search
// ----------------------------------------------------------------

func (s *propertyService) Search(ctx context.Context, f repositories.PropertyFilter, page, limit int) ([]*models.Property, utils.Pagination, error) {
	start := time.Now()
	defer func() {
		metrics.Observe("properties_search", float64(time.Since(start).Milliseconds()))
	}()

	props, err := s.propertyRepo.Search(ctx, f, limit, (page-1)*limit)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	total, err := s.propertyRepo.CountSearch(ctx, f)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	return props, utils.NewPagination(page, limit, total), nil
}

func (s *propertyService) Get(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrPropertyNotFound
	}
	return p, nil
}

// ----------------------------------------------------------------
// Create
// ----------------------------------------------------------------

func (s *propertyService) Create(ctx context.Context, userID uuid.UUID, req dtos.CreatePropertyRequest) (*models.Property, error) {
	loc, err := s.geocoder.Geocode(ctx, req.StreetAddress)
	if err != nil {
		return nil, err
	}

	var imageURLs []string
	if len(req.Images) > 0 {
		imageURLs, err = s.uploader.UploadImages(ctx, req.Images)
		if err != nil {
			return nil, err
		}
	}

	var projectID *uuid.UUID
	if req.ProjectID != nil && *req.ProjectID != "" {
		id, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			return nil, err
		}
		projectID = &id
	}

	p := &models.Property{
		ID:            uuid.New(),
		UserID:        userID,
		ProjectID:     projectID,
		StreetAddress: req.StreetAddress,
		City:          loc.City,
		State:         loc.State,
		ZipCode:       loc.ZipCode,
		Locality:      loc.Locality,
		Latitude:      &loc.Latitude,
		Longitude:     &loc.Longitude,
		PropertyType:  req.PropertyType,
		Details:       req.Details,
		ImageURLs:     imageURLs,
		ListingStatus: models.ListingActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if len(imageURLs) > 0 {
		p.ThumbnailURL = &imageURLs[0]
	}

	if err := s.propertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ----------------------------------------------------------------
// Favorites
// ----------------------------------------------------------------

// ToggleFavorite reads the (user, property) bookmark and flips it: absent
// creates, present deletes. The read and write are not serialized; the
// unique constraint on saved_properties backstops a concurrent double-create.
func (s *propertyService) ToggleFavorite(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	owner, err := s.propertyRepo.GetOwnership(ctx, propertyID)
	if err != nil {
		return false, err
	}
	if owner == nil {
		return false, utils.ErrPropertyNotFound
	}
	if owner.UserID == userID {
		return false, utils.ErrOwnProperty
	}

	existing, err := s.savedRepo.Get(ctx, userID, propertyID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := s.savedRepo.Delete(ctx, userID, propertyID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.savedRepo.Create(ctx, &models.SavedProperty{
		ID:         uuid.New(),
		UserID:     userID,
		PropertyID: propertyID,
	}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *propertyService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*models.Property, error) {
	return s.savedRepo.ListByUser(ctx, userID)
}

// ----------------------------------------------------------------
// Lifecycle (owner-restricted)
// ----------------------------------------------------------------

func (s *propertyService) Archive(ctx context.Context, userID, propertyID uuid.UUID, archived bool) (*models.Property, error) {
	if _, err := s.requireOwner(ctx, userID, propertyID); err != nil {
		return nil, err
	}
	// Idempotent set, not a read-modify-write toggle.
	return s.propertyRepo.SetArchived(ctx, propertyID, archived)
}

func (s *propertyService) MarkSold(ctx context.Context, userID, propertyID, soldTo uuid.UUID) (*models.Property, error) {
	owner, err := s.requireOwner(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	if owner.ListingStatus != models.ListingActive {
		return nil, utils.ErrPropertyNotActive
	}
	return s.propertyRepo.MarkSold(ctx, propertyID, soldTo, time.Now())
}

// Reactivate returns an archived listing to ACTIVE. SOLD is terminal; there
// is no transition out of it.
func (s *propertyService) Reactivate(ctx context.Context, userID, propertyID uuid.UUID) (*models.Property, error) {
	owner, err := s.requireOwner(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	if owner.ListingStatus != models.ListingArchived {
		return nil, utils.ErrPropertyNotArchived
	}
	return s.propertyRepo.Reactivate(ctx, propertyID)
}

func (s *propertyService) requireOwner(ctx context.Context, userID, propertyID uuid.UUID) (*repositories.PropertyOwnership, error) {
	owner, err := s.propertyRepo.GetOwnership(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, utils.ErrPropertyNotFound
	}
	if owner.UserID != userID {
		return nil, utils.ErrNotOwner
	}
	return owner, nil
}

// ----------------------------------------------------------------
// Interests
// ----------------------------------------------------------------

func (s *propertyService) RecordInterest(ctx context.Context, userID, propertyID uuid.UUID, message *string) (*models.Interest, error) {
	owner, err := s.propertyRepo.GetOwnership(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, utils.ErrPropertyNotFound
	}
	if owner.UserID == userID {
		return nil, utils.ErrOwnProperty
	}

	i := &models.Interest{
		ID:         uuid.New(),
		UserID:     userID,
		PropertyID: propertyID,
		Message:    message,
		CreatedAt:  time.Now(),
	}
	if err := s.interestRepo.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// ----------------------------------------------------------------
// Owner view
// ----------------------------------------------------------------

func (s *propertyService) ListOwnerProperties(ctx context.Context, ownerID uuid.UUID) ([]dtos.UserProperty, error) {
	rows, err := s.propertyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.UserProperty, 0, len(rows))
	for _, row := range rows {
		interests, err := s.interestRepo.ListByProperty(ctx, row.Property.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, transformOwnerProperty(row, interests))
	}
	return out, nil
}

func transformOwnerProperty(row *repositories.OwnerPropertyRow, interests []*repositories.InterestWithUser) dtos.UserProperty {
	p := row.Property

	project := p.Details.Title
	if row.ProjectName != nil && *row.ProjectName != "" {
		project = *row.ProjectName
	}
	builder := "Independent"
	if row.ProjectBuilder != nil && *row.ProjectBuilder != "" {
		builder = *row.ProjectBuilder
	}

	up := dtos.UserProperty{
		ID:           p.ID.String(),
		Builder:      builder,
		Project:      project,
		PropertyType: p.PropertyType,
		Details:      p.Details,
		Location: dtos.UserPropertyLocation{
			City:        p.City,
			State:       p.State,
			ZipCode:     p.ZipCode,
			Locality:    p.Locality,
			FullAddress: composeFullAddress(p.Locality, p.City, p.State, p.ZipCode),
		},
		ImageURLs:     p.ImageURLs,
		ThumbnailURL:  p.ThumbnailURL,
		ListingStatus: string(p.ListingStatus),
		PostedDate:    dtos.ISOTime(p.CreatedAt),
		Interests:     make([]dtos.PropertyInterest, 0, len(interests)),
	}
	if p.SoldDate != nil {
		up.SoldDate = utils.Ptr(dtos.ISOTime(*p.SoldDate))
	}

	for _, iw := range interests {
		pi := dtos.PropertyInterest{
			Name:      "Unknown User",
			Phone:     "Not provided",
			CreatedAt: dtos.ISOTime(iw.Interest.CreatedAt),
		}
		if iw.UserName != nil && *iw.UserName != "" {
			pi.Name = *iw.UserName
		}
		if iw.Mobile != nil && *iw.Mobile != "" {
			pi.Phone = *iw.Mobile
		}
		if iw.Interest.Message != nil {
			pi.Message = *iw.Interest.Message
		}
		up.Interests = append(up.Interests, pi)
	}
	return up
}

// composeFullAddress joins "<locality>, <city>, <state> <zipcode>", dropping
// whichever parts are absent.
func composeFullAddress(locality, city, state, zip string) string {
	var parts []string
	if locality != "" {
		parts = append(parts, locality)
	}
	if city != "" {
		parts = append(parts, city)
	}
	if tail := strings.TrimSpace(state + " " + zip); tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}
