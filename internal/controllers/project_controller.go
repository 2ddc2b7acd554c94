package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/thegrihome/grihome-api/internal/config"
	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/middleware"
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/services"
	"github.com/thegrihome/grihome-api/internal/utils"
)

type ProjectController struct {
	projectService services.ProjectService
	debug          bool
}

func NewProjectController(projectService services.ProjectService, cfg *config.Config) *ProjectController {
	return &ProjectController{projectService: projectService, debug: cfg.Debug()}
}

// List uses the error-keyed body and the alternate pagination naming. Its
// limit is not capped. Both oddities are relied on by the projects pages.
func (c *ProjectController) List(w http.ResponseWriter, r *http.Request) {
	page, limit, _ := utils.ParsePageQuery(r, 0)

	projects, pagination, err := c.projectService.List(r.Context(), page, limit)
	if err != nil {
		utils.RespondErrorKeyed(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
		return
	}

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, *p)
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ProjectListResponse{
		Projects:   out,
		Pagination: pagination,
	})
}

func (c *ProjectController) Archive(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.ArchiveProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	if req.ProjectID == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "ProjectID is required")
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		utils.RespondMessage(w, http.StatusNotFound, "Project not found")
		return
	}

	archived := true
	if req.IsArchived != nil {
		archived = *req.IsArchived
	}

	p, err := c.projectService.SetArchived(r.Context(), userID, projectID, archived)
	if err != nil {
		c.respondProjectError(w, err)
		return
	}

	msg := "Project restored successfully"
	if archived {
		msg = "Project archived successfully"
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ProjectResponse{Message: msg, Project: *p})
}

func (c *ProjectController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload", err, c.debug)
		return
	}
	if req.ProjectID == "" || req.Name == "" || req.Builder == "" || req.City == "" {
		utils.RespondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	p, err := c.projectService.Update(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, utils.ErrUploadFailed) {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to upload images or PDF", err, c.debug)
			return
		}
		c.respondProjectError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.ProjectResponse{
		Message: "Project updated successfully",
		Project: *p,
	})
}

func (c *ProjectController) respondProjectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, utils.ErrProjectNotFound):
		utils.RespondMessage(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, utils.ErrNotOwner):
		utils.RespondMessage(w, http.StatusForbidden, "You can only modify your own projects")
	default:
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", err, c.debug)
	}
}
