package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/thegrihome/grihome-api/internal/config"
	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/middleware"
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/services"
	"github.com/thegrihome/grihome-api/internal/utils"
)

type ForumController struct {
	forumService services.ForumService
	debug        bool
}

func NewForumController(forumService services.ForumService, cfg *config.Config) *ForumController {
	return &ForumController{forumService: forumService, debug: cfg.Debug()}
}

func (c *ForumController) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := c.forumService.ListCategories(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	out := make([]models.ForumCategory, 0, len(cats))
	for _, cat := range cats {
		out = append(out, *cat)
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ForumCategoriesResponse{Categories: out})
}

func (c *ForumController) InitCities(w http.ResponseWriter, r *http.Request) {
	added, cities, err := c.forumService.InitCities(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.InitCitiesResponse{
		Message:     fmt.Sprintf("Initialized %d city categories", added),
		CitiesAdded: added,
		Cities:      cities,
	})
}

// Posts serves both reads and writes on /api/forum/posts; the method gate
// lives here rather than in the router because the route accepts two methods.
func (c *ForumController) Posts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.listPosts(w, r)
	case http.MethodPost:
		c.createPost(w, r)
	default:
		utils.RespondMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (c *ForumController) listPosts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "Category is required")
		return
	}
	page, limit, _ := utils.ParsePageQuery(r, 0)

	posts, pagination, err := c.forumService.ListPosts(r.Context(), category, page, limit)
	if err != nil {
		if errors.Is(err, utils.ErrCategoryNotFound) {
			utils.RespondMessage(w, http.StatusNotFound, "Category not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	out := make([]models.ForumPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, *p)
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ForumPostsResponse{Posts: out, Pagination: pagination})
}

func (c *ForumController) createPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	if req.CategoryID == "" || req.Title == "" || req.Content == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	post, err := c.forumService.CreatePost(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, utils.ErrCategoryNotFound) {
			utils.RespondMessage(w, http.StatusNotFound, "Category not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.ForumPostResponse{
		Message: "Post created successfully",
		Post:    *post,
	})
}

func (c *ForumController) CreateReply(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreateReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	if req.PostID == "" || req.Content == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	reply, err := c.forumService.CreateReply(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, utils.ErrPostNotFound) {
			utils.RespondMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.ForumReplyResponse{
		Message: "Reply created successfully",
		Reply:   *reply,
	})
}

func (c *ForumController) UserPosts(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["userId"]
	if raw == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "UserId is required")
		return
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondMessage(w, http.StatusNotFound, "User not found")
		return
	}
	page, limit, _ := utils.ParsePageQuery(r, 0)

	activity, err := c.forumService.UserActivity(r.Context(), userID, page, limit)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.RespondMessage(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, activity)
}
