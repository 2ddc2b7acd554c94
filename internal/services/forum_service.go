package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/repositories"
	"github.com/thegrihome/grihome-api/internal/utils"
)

// forumCities is the fixed seed set for city discussion boards.
var forumCities = []string{
	"Hyderabad",
	"Bengaluru",
	"Chennai",
	"Mumbai",
	"Pune",
	"Delhi",
	"Kolkata",
	"Ahmedabad",
	"Visakhapatnam",
	"Vijayawada",
}

type ForumService interface {
	ListCategories(ctx context.Context) ([]*models.ForumCategory, error)
	InitCities(ctx context.Context) (int, []string, error)

	ListPosts(ctx context.Context, categorySlug string, page, limit int) ([]*models.ForumPost, utils.Pagination, error)
	CreatePost(ctx context.Context, userID uuid.UUID, req dtos.CreatePostRequest) (*models.ForumPost, error)
	CreateReply(ctx context.Context, userID uuid.UUID, req dtos.CreateReplyRequest) (*models.ForumReply, error)

	UserActivity(ctx context.Context, userID uuid.UUID, page, limit int) (*dtos.ForumUserActivityResponse, error)
}

type forumService struct {
	forumRepo repositories.ForumRepository
	userRepo  repositories.UserRepository
}

func NewForumService(forumRepo repositories.ForumRepository, userRepo repositories.UserRepository) ForumService {
	return &forumService{forumRepo: forumRepo, userRepo: userRepo}
}

func (s *forumService) ListCategories(ctx context.Context) ([]*models.ForumCategory, error) {
	return s.forumRepo.ListCategories(ctx)
}

// InitCities seeds the city boards, skipping ones that already exist.
func (s *forumService) InitCities(ctx context.Context) (int, []string, error) {
	added := 0
	for _, city := range forumCities {
		slug := slugify(city)
		existing, err := s.forumRepo.GetCategoryBySlug(ctx, slug)
		if err != nil {
			return 0, nil, err
		}
		if existing != nil {
			continue
		}
		err = s.forumRepo.CreateCategory(ctx, &models.ForumCategory{
			ID:          uuid.New(),
			Name:        city,
			Slug:        slug,
			Description: "Property discussions for " + city,
			IsCity:      true,
		})
		if err != nil {
			return 0, nil, err
		}
		added++
	}
	return added, forumCities, nil
}

func (s *forumService) ListPosts(ctx context.Context, categorySlug string, page, limit int) ([]*models.ForumPost, utils.Pagination, error) {
	cat, err := s.forumRepo.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	if cat == nil {
		return nil, utils.Pagination{}, utils.ErrCategoryNotFound
	}

	posts, err := s.forumRepo.ListPostsByCategory(ctx, cat.ID, limit, (page-1)*limit)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	total, err := s.forumRepo.CountPostsByCategory(ctx, cat.ID)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	return posts, utils.NewPagination(page, limit, total), nil
}

func (s *forumService) CreatePost(ctx context.Context, userID uuid.UUID, req dtos.CreatePostRequest) (*models.ForumPost, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, utils.ErrCategoryNotFound
	}

	p := &models.ForumPost{
		ID:         uuid.New(),
		CategoryID: categoryID,
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
	}
	if err := s.forumRepo.CreatePost(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *forumService) CreateReply(ctx context.Context, userID uuid.UUID, req dtos.CreateReplyRequest) (*models.ForumReply, error) {
	postID, err := uuid.Parse(req.PostID)
	if err != nil {
		return nil, utils.ErrPostNotFound
	}
	post, err := s.forumRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	reply := &models.ForumReply{
		ID:      uuid.New(),
		PostID:  postID,
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.forumRepo.CreateReply(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *forumService) UserActivity(ctx context.Context, userID uuid.UUID, page, limit int) (*dtos.ForumUserActivityResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrUserNotFound
	}

	offset := (page - 1) * limit
	posts, err := s.forumRepo.ListPostsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	replies, err := s.forumRepo.ListRepliesByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	totalPosts, err := s.forumRepo.CountPostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []*models.ForumPost{}
	}
	if replies == nil {
		replies = []*models.ForumReply{}
	}

	return &dtos.ForumUserActivityResponse{
		User:       dtos.NewUserInfo(*u),
		Posts:      deref(posts),
		Replies:    deref(replies),
		Pagination: utils.NewPagination(page, limit, totalPosts),
	}, nil
}

func deref[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}
	return out
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
