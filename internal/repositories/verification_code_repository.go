package repositories

import (
	"context"

	"github.com/thegrihome/grihome-api/internal/models"
)

type VerificationCodeRepository interface {
	Create(ctx context.Context, c *models.VerificationCode) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type verificationCodeRepo struct{ db DB }

func NewVerificationCodeRepository(db DB) VerificationCodeRepository {
	return &verificationCodeRepo{db: db}
}

func (r *verificationCodeRepo) Create(ctx context.Context, c *models.VerificationCode) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO verification_codes (id, user_id, channel, target, code, expires_at, created_at)
        VALUES ($1,$2,$3,$4,$5,$6, NOW())
    `, c.ID, c.UserID, c.Channel, c.Target, c.Code, c.ExpiresAt)
	return err
}

func (r *verificationCodeRepo) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM verification_codes WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
