// Package experience serves work experience entries.
package experience

import (
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/resource"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateExperienceDTO struct {
	Company     string   `json:"company"     binding:"required"`
	Role        string   `json:"role"        binding:"required"`
	Duration    string   `json:"duration"    binding:"required"`
	Description []string `json:"description" binding:"required"`
}

type experienceResponse struct {
	ID          uint     `json:"id"`
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

var descriptor = resource.Descriptor{
	Path:     "/experience",
	NotFound: "Item not found",
}

type (
	Service = resource.Collection[models.ExperienceModel, CreateExperienceDTO]
	Handler = resource.CollectionHandler[models.ExperienceModel, CreateExperienceDTO, experienceResponse]
)

func NewService(db *gorm.DB) *Service {
	table := store.NewTable[models.ExperienceModel](db, models.ExperienceModel{}.TableName())
	return resource.NewCollection(table, applyDTO)
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return resource.NewCollectionHandler(svc, toResponse, descriptor, log)
}

func applyDTO(e *models.ExperienceModel, dto *CreateExperienceDTO) {
	e.Company = dto.Company
	e.Role = dto.Role
	e.Duration = dto.Duration
	e.Description = append(models.StringArray{}, dto.Description...)
}

func toResponse(e *models.ExperienceModel) experienceResponse {
	description := []string(e.Description)
	if description == nil {
		description = []string{}
	}
	return experienceResponse{
		ID: e.ID, Company: e.Company, Role: e.Role,
		Duration: e.Duration, Description: description,
	}
}
