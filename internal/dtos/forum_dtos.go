package dtos

import (
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/utils"
)

// ----------------------------------------------------------------
// GET /api/forum/categories
// ----------------------------------------------------------------

type ForumCategoriesResponse struct {
	Categories []models.ForumCategory `json:"categories"`
}

// ----------------------------------------------------------------
// GET /api/forum/posts, POST /api/forum/posts
// ----------------------------------------------------------------

type ForumPostsResponse struct {
	Posts      []models.ForumPost `json:"posts"`
	Pagination utils.Pagination   `json:"pagination"`
}

type CreatePostRequest struct {
	CategoryID string `json:"categoryId" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

type ForumPostResponse struct {
	Message string           `json:"message"`
	Post    models.ForumPost `json:"post"`
}

// ----------------------------------------------------------------
// POST /api/forum/replies
// ----------------------------------------------------------------

type CreateReplyRequest struct {
	PostID  string `json:"postId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type ForumReplyResponse struct {
	Message string            `json:"message"`
	Reply   models.ForumReply `json:"reply"`
}

// ----------------------------------------------------------------
// GET /api/forum/user/{userId}/posts
// ----------------------------------------------------------------

type ForumUserActivityResponse struct {
	User       UserInfo           `json:"user"`
	Posts      []models.ForumPost `json:"posts"`
	Replies    []models.ForumReply `json:"replies"`
	Pagination utils.Pagination   `json:"pagination"`
}

// ----------------------------------------------------------------
// POST /api/forum/init-cities
// ----------------------------------------------------------------

type InitCitiesResponse struct {
	Message     string   `json:"message"`
	CitiesAdded int      `json:"citiesAdded"`
	Cities      []string `json:"cities"`
}
