package dtos

import (
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/utils"
)

// ----------------------------------------------------------------
// GET /api/projects — note the alternate pagination naming; this shape is
// consumed as-is by the projects pages.
// ----------------------------------------------------------------

type ProjectListResponse struct {
	Projects   []models.Project        `json:"projects"`
	Pagination utils.ProjectPagination `json:"pagination"`
}

// ----------------------------------------------------------------
// POST /api/projects/archive
// ----------------------------------------------------------------

type ArchiveProjectRequest struct {
	ProjectID string `json:"projectId"`
	// Omitted defaults to true (archive); explicit false restores.
	IsArchived *bool `json:"isArchived"`
}

type ProjectResponse struct {
	Message string         `json:"message"`
	Project models.Project `json:"project"`
}

// ----------------------------------------------------------------
// PUT /api/projects/update
// ----------------------------------------------------------------

type UpdateProjectRequest struct {
	ProjectID   string   `json:"projectId"`
	Name        string   `json:"name"`
	Builder     string   `json:"builder"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Locality    string   `json:"locality"`
	Images      []string `json:"images"`
	Brochure    *string  `json:"brochure"`
}
