package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/thegrihome/grihome-api/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByMobile(ctx context.Context, mobile string) (*models.User, error)

	SetEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error
	SetMobileVerified(ctx context.Context, id uuid.UUID, at time.Time) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type userRepo struct{ db DB }

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (
            id, name, username, email, mobile, role,
            company_name, image_url, password_hash,
            created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW())
    `,
		u.ID,
		u.Name,
		u.Username,
		u.Email,
		u.Mobile,
		u.Role,
		u.CompanyName,
		u.ImageURL,
		u.PasswordHash,
	)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE id=$1", id)
	return scanUser(row)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE email=$1", email)
	return scanUser(row)
}

func (r *userRepo) GetByMobile(ctx context.Context, mobile string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE mobile=$1", mobile)
	return scanUser(row)
}

func (r *userRepo) SetEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET email_verified=$1, updated_at=NOW() WHERE id=$2`, at, id)
	return err
}

func (r *userRepo) SetMobileVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET mobile_verified=$1, updated_at=NOW() WHERE id=$2`, at, id)
	return err
}

func baseSelectUser() string {
	return `
        SELECT
            id, name, username, email, mobile, role,
            company_name, image_url, password_hash,
            email_verified, mobile_verified,
            created_at, updated_at
        FROM users
    `
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.Mobile,
		&u.Role,
		&u.CompanyName,
		&u.ImageURL,
		&u.PasswordHash,
		&u.EmailVerified,
		&u.MobileVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
