package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/models"
	"github.com/thegrihome/grihome-api/internal/repositories"
	"github.com/thegrihome/grihome-api/internal/storage"
	"github.com/thegrihome/grihome-api/internal/utils"
)

type ProjectService interface {
	List(ctx context.Context, page, limit int) ([]*models.Project, utils.ProjectPagination, error)
	SetArchived(ctx context.Context, userID, projectID uuid.UUID, archived bool) (*models.Project, error)
	Update(ctx context.Context, userID uuid.UUID, req dtos.UpdateProjectRequest) (*models.Project, error)
}

type projectService struct {
	projectRepo repositories.ProjectRepository
	uploader    storage.Uploader
}

func NewProjectService(projectRepo repositories.ProjectRepository, uploader storage.Uploader) ProjectService {
	return &projectService{projectRepo: projectRepo, uploader: uploader}
}

func (s *projectService) List(ctx context.Context, page, limit int) ([]*models.Project, utils.ProjectPagination, error) {
	projects, err := s.projectRepo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, utils.ProjectPagination{}, err
	}
	total, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, utils.ProjectPagination{}, err
	}
	return projects, utils.NewProjectPagination(page, limit, total), nil
}

func (s *projectService) SetArchived(ctx context.Context, userID, projectID uuid.UUID, archived bool) (*models.Project, error) {
	if err := s.requireOwner(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return s.projectRepo.SetArchived(ctx, projectID, archived)
}

func (s *projectService) Update(ctx context.Context, userID uuid.UUID, req dtos.UpdateProjectRequest) (*models.Project, error) {
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return nil, utils.ErrProjectNotFound
	}
	if err := s.requireOwner(ctx, userID, projectID); err != nil {
		return nil, err
	}

	var imageURLs []string
	if len(req.Images) > 0 {
		imageURLs, err = s.uploader.UploadImages(ctx, req.Images)
		if err != nil {
			return nil, err
		}
	}
	var brochureURL *string
	if req.Brochure != nil && *req.Brochure != "" {
		url, err := s.uploader.UploadPDF(ctx, *req.Brochure)
		if err != nil {
			return nil, err
		}
		brochureURL = &url
	}

	p := &models.Project{
		ID:          projectID,
		Name:        req.Name,
		Builder:     req.Builder,
		Description: req.Description,
		City:        req.City,
		State:       req.State,
		Locality:    req.Locality,
		ImageURLs:   imageURLs,
		BrochureURL: brochureURL,
	}
	return s.projectRepo.Update(ctx, p)
}

func (s *projectService) requireOwner(ctx context.Context, userID, projectID uuid.UUID) error {
	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if p == nil {
		return utils.ErrProjectNotFound
	}
	if p.UserID != userID {
		return utils.ErrNotOwner
	}
	return nil
}
