package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/thegrihome/grihome-api/internal/models"
)

type SavedPropertyRepository interface {
	// Get resolves the row by its unique (user_id, property_id) key.
	Get(ctx context.Context, userID, propertyID uuid.UUID) (*models.SavedProperty, error)
	Create(ctx context.Context, s *models.SavedProperty) error
	Delete(ctx context.Context, userID, propertyID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Property, error)
}

type savedPropertyRepo struct{ db DB }

func NewSavedPropertyRepository(db DB) SavedPropertyRepository {
	return &savedPropertyRepo{db: db}
}

func (r *savedPropertyRepo) Get(ctx context.Context, userID, propertyID uuid.UUID) (*models.SavedProperty, error) {
	var s models.SavedProperty
	err := r.db.QueryRow(ctx, `
        SELECT id, user_id, property_id, created_at
        FROM saved_properties
        WHERE user_id=$1 AND property_id=$2
    `, userID, propertyID).Scan(&s.ID, &s.UserID, &s.PropertyID, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *savedPropertyRepo) Create(ctx context.Context, s *models.SavedProperty) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO saved_properties (id, user_id, property_id, created_at)
        VALUES ($1,$2,$3, NOW())
    `, s.ID, s.UserID, s.PropertyID)
	return err
}

func (r *savedPropertyRepo) Delete(ctx context.Context, userID, propertyID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM saved_properties WHERE user_id=$1 AND property_id=$2`,
		userID, propertyID,
	)
	return err
}

func (r *savedPropertyRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, baseSelectProperty()+`
        WHERE id IN (SELECT property_id FROM saved_properties WHERE user_id=$1)
        ORDER BY created_at DESC
    `, userID)
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
