package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/thegrihome/grihome-api/internal/models"
)

type ForumRepository interface {
	ListCategories(ctx context.Context) ([]*models.ForumCategory, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.ForumCategory, error)
	CreateCategory(ctx context.Context, c *models.ForumCategory) error

	CreatePost(ctx context.Context, p *models.ForumPost) error
	ListPostsByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]*models.ForumPost, error)
	CountPostsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	CreateReply(ctx context.Context, r *models.ForumReply) error
	GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, error)

	ListPostsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.ForumPost, error)
	CountPostsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	ListRepliesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.ForumReply, error)
	CountRepliesByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type forumRepo struct{ db DB }

func NewForumRepository(db DB) ForumRepository {
	return &forumRepo{db: db}
}

func (r *forumRepo) ListCategories(ctx context.Context) ([]*models.ForumCategory, error) {
	rows, err := r.db.Query(ctx, baseSelectCategory()+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ForumCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *forumRepo) GetCategoryBySlug(ctx context.Context, slug string) (*models.ForumCategory, error) {
	row := r.db.QueryRow(ctx, baseSelectCategory()+" WHERE slug=$1", slug)
	return scanCategory(row)
}

func (r *forumRepo) CreateCategory(ctx context.Context, c *models.ForumCategory) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO forum_categories (id, name, slug, description, is_city, created_at)
        VALUES ($1,$2,$3,$4,$5, NOW())
    `, c.ID, c.Name, c.Slug, c.Description, c.IsCity)
	return err
}

func (r *forumRepo) CreatePost(ctx context.Context, p *models.ForumPost) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO forum_posts (id, category_id, user_id, title, content, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5, NOW(), NOW())
    `, p.ID, p.CategoryID, p.UserID, p.Title, p.Content)
	return err
}

func (r *forumRepo) GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, error) {
	row := r.db.QueryRow(ctx, baseSelectPost()+" WHERE id=$1", id)
	return scanPost(row)
}

func (r *forumRepo) ListPostsByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]*models.ForumPost, error) {
	return r.listPosts(ctx, " WHERE category_id=$1", categoryID, limit, offset)
}

func (r *forumRepo) CountPostsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM forum_posts WHERE category_id=$1`, categoryID).Scan(&total)
	return total, err
}

func (r *forumRepo) CreateReply(ctx context.Context, reply *models.ForumReply) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO forum_replies (id, post_id, user_id, content, created_at)
        VALUES ($1,$2,$3,$4, NOW())
    `, reply.ID, reply.PostID, reply.UserID, reply.Content)
	return err
}

func (r *forumRepo) ListPostsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.ForumPost, error) {
	return r.listPosts(ctx, " WHERE user_id=$1", userID, limit, offset)
}

func (r *forumRepo) CountPostsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM forum_posts WHERE user_id=$1`, userID).Scan(&total)
	return total, err
}

func (r *forumRepo) ListRepliesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.ForumReply, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, post_id, user_id, content, created_at
        FROM forum_replies
        WHERE user_id=$1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ForumReply
	for rows.Next() {
		var reply models.ForumReply
		if err := rows.Scan(&reply.ID, &reply.PostID, &reply.UserID, &reply.Content, &reply.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &reply)
	}
	return out, rows.Err()
}

func (r *forumRepo) CountRepliesByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM forum_replies WHERE user_id=$1`, userID).Scan(&total)
	return total, err
}

func (r *forumRepo) listPosts(ctx context.Context, where string, key uuid.UUID, limit, offset int) ([]*models.ForumPost, error) {
	rows, err := r.db.Query(ctx,
		baseSelectPost()+where+" ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		key, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ForumPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func baseSelectCategory() string {
	return `SELECT id, name, slug, description, is_city, created_at FROM forum_categories`
}

func scanCategory(row pgx.Row) (*models.ForumCategory, error) {
	var c models.ForumCategory
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsCity, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func baseSelectPost() string {
	return `SELECT id, category_id, user_id, title, content, created_at, updated_at FROM forum_posts`
}

func scanPost(row pgx.Row) (*models.ForumPost, error) {
	var p models.ForumPost
	err := row.Scan(&p.ID, &p.CategoryID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
