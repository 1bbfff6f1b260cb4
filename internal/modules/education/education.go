// Package education serves the single education entry.
package education

import (
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/resource"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateEducationDTO struct {
	Institution string   `json:"institution" binding:"required"`
	Degree      string   `json:"degree"      binding:"required"`
	CGPA        *float64 `json:"cgpa"        binding:"required"`
	Duration    string   `json:"duration"    binding:"required"`
	Location    string   `json:"location"    binding:"required"`
}

type educationResponse struct {
	ID          uint    `json:"id"`
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	CGPA        float64 `json:"cgpa"`
	Duration    string  `json:"duration"`
	Location    string  `json:"location"`
}

var descriptor = resource.Descriptor{
	Path:          "/education",
	AlreadyExists: "Education entry already exists. Use PUT to update.",
	NotFound:      "Education not found. Use POST to create one.",
}

type (
	Service = resource.Singleton[models.EducationModel, CreateEducationDTO]
	Handler = resource.SingletonHandler[models.EducationModel, CreateEducationDTO, educationResponse]
)

func NewService(db *gorm.DB) *Service {
	table := store.NewTable[models.EducationModel](db, models.EducationModel{}.TableName())
	return resource.NewSingleton(table, applyDTO)
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return resource.NewSingletonHandler(svc, toResponse, descriptor, log)
}

func applyDTO(e *models.EducationModel, dto *CreateEducationDTO) {
	e.Institution = dto.Institution
	e.Degree = dto.Degree
	if dto.CGPA != nil {
		e.CGPA = *dto.CGPA
	}
	e.Duration = dto.Duration
	e.Location = dto.Location
}

func toResponse(e *models.EducationModel) educationResponse {
	return educationResponse{
		ID: e.ID, Institution: e.Institution, Degree: e.Degree,
		CGPA: e.CGPA, Duration: e.Duration, Location: e.Location,
	}
}
