package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/thegrihome/grihome-api/internal/models"
)

/* ------------------------------------------------------------------
   Filter
------------------------------------------------------------------ */

// PropertyFilter carries only the search parameters that were present on the
// request. Absent parameters stay nil and produce no SQL clause.
type PropertyFilter struct {
	City         *string
	State        *string
	ZipCode      *string
	Locality     *string
	PropertyType *string
	MinPrice     *float64
	MaxPrice     *float64
	MinSqFt      *float64
	Bedrooms     *float64
	Bathrooms    *float64
	Status       *models.ListingStatus
}

// OwnerPropertyRow is the owner-view projection: the property plus the name
// of the project it belongs to, when any.
type OwnerPropertyRow struct {
	Property       models.Property
	ProjectName    *string
	ProjectBuilder *string
}

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	// GetOwnership fetches the minimal projection needed for owner checks.
	GetOwnership(ctx context.Context, id uuid.UUID) (*PropertyOwnership, error)

	Search(ctx context.Context, f PropertyFilter, limit, offset int) ([]*models.Property, error)
	CountSearch(ctx context.Context, f PropertyFilter) (int64, error)

	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*OwnerPropertyRow, error)

	SetArchived(ctx context.Context, id uuid.UUID, archived bool) (*models.Property, error)
	MarkSold(ctx context.Context, id uuid.UUID, soldTo uuid.UUID, soldDate time.Time) (*models.Property, error)
	Reactivate(ctx context.Context, id uuid.UUID) (*models.Property, error)
}

// PropertyOwnership is what the ownership gate reads before any mutation.
type PropertyOwnership struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ListingStatus models.ListingStatus
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct{ db DB }

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	details, err := detailsJSONB(p.Details)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO properties (
            id, user_id, project_id,
            street_address, city, state, zip_code, locality,
            latitude, longitude, property_type,
            details, image_urls, thumbnail_url,
            listing_status, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15, NOW(), NOW())
    `,
		p.ID,
		p.UserID,
		p.ProjectID,
		p.StreetAddress,
		p.City,
		p.State,
		p.ZipCode,
		p.Locality,
		p.Latitude,
		p.Longitude,
		p.PropertyType,
		details,
		p.ImageURLs,
		p.ThumbnailURL,
		p.ListingStatus,
	)
	return err
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	row := r.db.QueryRow(ctx, baseSelectProperty()+" WHERE id=$1", id)
	return scanProperty(row)
}

func (r *propertyRepo) GetOwnership(ctx context.Context, id uuid.UUID) (*PropertyOwnership, error) {
	var o PropertyOwnership
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, listing_status FROM properties WHERE id=$1`, id,
	).Scan(&o.ID, &o.UserID, &o.ListingStatus)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *propertyRepo) Search(ctx context.Context, f PropertyFilter, limit, offset int) ([]*models.Property, error) {
	where, args := buildPropertyWhere(f)
	sql := fmt.Sprintf(
		"%s %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		baseSelectProperty(), where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *propertyRepo) CountSearch(ctx context.Context, f PropertyFilter) (int64, error) {
	where, args := buildPropertyWhere(f)
	var total int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM properties "+where, args...).Scan(&total)
	return total, err
}

func (r *propertyRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*OwnerPropertyRow, error) {
	rows, err := r.db.Query(ctx, `
        SELECT
            p.id, p.user_id, p.project_id,
            p.street_address, p.city, p.state, p.zip_code, p.locality,
            p.latitude, p.longitude, p.property_type,
            p.details, p.image_urls, p.thumbnail_url,
            p.listing_status, p.sold_to, p.sold_date,
            p.created_at, p.updated_at,
            pr.name, pr.builder
        FROM properties p
        LEFT JOIN projects pr ON pr.id = p.project_id
        WHERE p.user_id=$1
        ORDER BY p.created_at DESC
    `, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*OwnerPropertyRow
	for rows.Next() {
		var (
			row     OwnerPropertyRow
			details pgtype.JSONB
		)
		err := rows.Scan(
			&row.Property.ID,
			&row.Property.UserID,
			&row.Property.ProjectID,
			&row.Property.StreetAddress,
			&row.Property.City,
			&row.Property.State,
			&row.Property.ZipCode,
			&row.Property.Locality,
			&row.Property.Latitude,
			&row.Property.Longitude,
			&row.Property.PropertyType,
			&details,
			&row.Property.ImageURLs,
			&row.Property.ThumbnailURL,
			&row.Property.ListingStatus,
			&row.Property.SoldTo,
			&row.Property.SoldDate,
			&row.Property.CreatedAt,
			&row.Property.UpdatedAt,
			&row.ProjectName,
			&row.ProjectBuilder,
		)
		if err != nil {
			return nil, err
		}
		if err := assignDetails(details, &row.Property.Details); err != nil {
			return nil, err
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}

func (r *propertyRepo) SetArchived(ctx context.Context, id uuid.UUID, archived bool) (*models.Property, error) {
	status := models.ListingActive
	if archived {
		status = models.ListingArchived
	}
	row := r.db.QueryRow(ctx, `
        UPDATE properties
        SET listing_status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING `+propertyColumns(),
		status, id,
	)
	return scanProperty(row)
}

func (r *propertyRepo) MarkSold(ctx context.Context, id uuid.UUID, soldTo uuid.UUID, soldDate time.Time) (*models.Property, error) {
	row := r.db.QueryRow(ctx, `
        UPDATE properties
        SET listing_status=$1, sold_to=$2, sold_date=$3, updated_at=NOW()
        WHERE id=$4
        RETURNING `+propertyColumns(),
		models.ListingSold, soldTo, soldDate, id,
	)
	return scanProperty(row)
}

func (r *propertyRepo) Reactivate(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	row := r.db.QueryRow(ctx, `
        UPDATE properties
        SET listing_status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING `+propertyColumns(),
		models.ListingActive, id,
	)
	return scanProperty(row)
}

/* ------------------------------------------------------------------
   SQL helpers
------------------------------------------------------------------ */

func buildPropertyWhere(f PropertyFilter) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)
	add := func(clause string, val interface{}) {
		args = append(args, val)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if f.City != nil {
		add("city ILIKE $%d", *f.City)
	}
	if f.State != nil {
		add("state ILIKE $%d", *f.State)
	}
	if f.ZipCode != nil {
		add("zip_code=$%d", *f.ZipCode)
	}
	if f.Locality != nil {
		add("locality ILIKE $%d", *f.Locality)
	}
	if f.PropertyType != nil {
		add("property_type=$%d", *f.PropertyType)
	}
	if f.MinPrice != nil {
		add("(details->>'price')::numeric >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("(details->>'price')::numeric <= $%d", *f.MaxPrice)
	}
	if f.MinSqFt != nil {
		add("(details->>'sqFt')::numeric >= $%d", *f.MinSqFt)
	}
	if f.Bedrooms != nil {
		add("(details->>'bedrooms')::numeric >= $%d", *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		add("(details->>'bathrooms')::numeric >= $%d", *f.Bathrooms)
	}
	if f.Status != nil {
		add("listing_status=$%d", *f.Status)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func propertyColumns() string {
	return `
            id, user_id, project_id,
            street_address, city, state, zip_code, locality,
            latitude, longitude, property_type,
            details, image_urls, thumbnail_url,
            listing_status, sold_to, sold_date,
            created_at, updated_at
    `
}

func baseSelectProperty() string {
	return "SELECT " + propertyColumns() + " FROM properties"
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var (
		p       models.Property
		details pgtype.JSONB
	)
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.ProjectID,
		&p.StreetAddress,
		&p.City,
		&p.State,
		&p.ZipCode,
		&p.Locality,
		&p.Latitude,
		&p.Longitude,
		&p.PropertyType,
		&details,
		&p.ImageURLs,
		&p.ThumbnailURL,
		&p.ListingStatus,
		&p.SoldTo,
		&p.SoldDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := assignDetails(details, &p.Details); err != nil {
		return nil, err
	}
	return &p, nil
}

func assignDetails(col pgtype.JSONB, dst *models.PropertyDetails) error {
	if col.Status != pgtype.Present || len(col.Bytes) == 0 {
		return nil
	}
	return json.Unmarshal(col.Bytes, dst)
}

func detailsJSONB(d models.PropertyDetails) (pgtype.JSONB, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return pgtype.JSONB{Status: pgtype.Null}, err
	}
	return pgtype.JSONB{Bytes: b, Status: pgtype.Present}, nil
}
