// Package project serves portfolio projects.
package project

import (
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/resource"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateProjectDTO struct {
	Title        string   `json:"title"        binding:"required"`
	Technologies []string `json:"technologies" binding:"required"`
	Description  []string `json:"description"  binding:"required"`
}

type projectResponse struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Technologies []string `json:"technologies"`
	Description  []string `json:"description"`
}

var descriptor = resource.Descriptor{
	Path:     "/projects",
	NotFound: "Item not found",
}

type (
	Service = resource.Collection[models.ProjectModel, CreateProjectDTO]
	Handler = resource.CollectionHandler[models.ProjectModel, CreateProjectDTO, projectResponse]
)

func NewService(db *gorm.DB) *Service {
	table := store.NewTable[models.ProjectModel](db, models.ProjectModel{}.TableName())
	return resource.NewCollection(table, applyDTO)
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return resource.NewCollectionHandler(svc, toResponse, descriptor, log)
}

func applyDTO(p *models.ProjectModel, dto *CreateProjectDTO) {
	p.Title = dto.Title
	p.Technologies = append(models.StringArray{}, dto.Technologies...)
	p.Description = append(models.StringArray{}, dto.Description...)
}

func toResponse(p *models.ProjectModel) projectResponse {
	technologies := []string(p.Technologies)
	if technologies == nil {
		technologies = []string{}
	}
	description := []string(p.Description)
	if description == nil {
		description = []string{}
	}
	return projectResponse{
		ID: p.ID, Title: p.Title,
		Technologies: technologies, Description: description,
	}
}
