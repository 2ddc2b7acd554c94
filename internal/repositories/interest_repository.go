package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/thegrihome/grihome-api/internal/models"
)

// InterestWithUser joins an interest with the contact details of the buyer
// who expressed it, for the owner-side property view.
type InterestWithUser struct {
	Interest models.Interest
	UserName *string
	Mobile   *string
}

type InterestRepository interface {
	Create(ctx context.Context, i *models.Interest) error
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*InterestWithUser, error)
}

type interestRepo struct{ db DB }

func NewInterestRepository(db DB) InterestRepository {
	return &interestRepo{db: db}
}

func (r *interestRepo) Create(ctx context.Context, i *models.Interest) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO interests (id, user_id, property_id, message, created_at)
        VALUES ($1,$2,$3,$4, NOW())
    `, i.ID, i.UserID, i.PropertyID, i.Message)
	return err
}

func (r *interestRepo) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*InterestWithUser, error) {
	rows, err := r.db.Query(ctx, `
        SELECT
            i.id, i.user_id, i.property_id, i.message, i.created_at,
            u.name, u.mobile
        FROM interests i
        LEFT JOIN users u ON u.id = i.user_id
        WHERE i.property_id=$1
        ORDER BY i.created_at
    `, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*InterestWithUser
	for rows.Next() {
		var iw InterestWithUser
		err := rows.Scan(
			&iw.Interest.ID,
			&iw.Interest.UserID,
			&iw.Interest.PropertyID,
			&iw.Interest.Message,
			&iw.Interest.CreatedAt,
			&iw.UserName,
			&iw.Mobile,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, &iw)
	}
	return out, rows.Err()
}
