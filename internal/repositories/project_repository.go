package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/thegrihome/grihome-api/internal/models"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	List(ctx context.Context, limit, offset int) ([]*models.Project, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, p *models.Project) (*models.Project, error)
	SetArchived(ctx context.Context, id uuid.UUID, archived bool) (*models.Project, error)
}

type projectRepo struct{ db DB }

func NewProjectRepository(db DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	row := r.db.QueryRow(ctx, baseSelectProject()+" WHERE id=$1", id)
	return scanProject(row)
}

func (r *projectRepo) List(ctx context.Context, limit, offset int) ([]*models.Project, error) {
	rows, err := r.db.Query(ctx, baseSelectProject()+`
        WHERE is_archived=false
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *projectRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM projects WHERE is_archived=false`).Scan(&total)
	return total, err
}

func (r *projectRepo) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	row := r.db.QueryRow(ctx, `
        UPDATE projects SET
            name=$1, builder=$2, description=$3,
            city=$4, state=$5, locality=$6,
            image_urls=$7, brochure_url=$8, updated_at=NOW()
        WHERE id=$9
        RETURNING `+projectColumns(),
		p.Name, p.Builder, p.Description,
		p.City, p.State, p.Locality,
		p.ImageURLs, p.BrochureURL, p.ID,
	)
	return scanProject(row)
}

func (r *projectRepo) SetArchived(ctx context.Context, id uuid.UUID, archived bool) (*models.Project, error) {
	row := r.db.QueryRow(ctx, `
        UPDATE projects SET is_archived=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING `+projectColumns(),
		archived, id,
	)
	return scanProject(row)
}

func projectColumns() string {
	return `
            id, user_id, name, builder, description,
            city, state, locality,
            image_urls, brochure_url, is_archived,
            created_at, updated_at
    `
}

func baseSelectProject() string {
	return "SELECT " + projectColumns() + " FROM projects"
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Builder,
		&p.Description,
		&p.City,
		&p.State,
		&p.Locality,
		&p.ImageURLs,
		&p.BrochureURL,
		&p.IsArchived,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
