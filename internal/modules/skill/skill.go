// Package skill serves skill categories. Category names are unique.
package skill

import (
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/resource"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateSkillCategoryDTO struct {
	CategoryName string   `json:"category_name" binding:"required"`
	Skills       []string `json:"skills"        binding:"required"`
}

type skillCategoryResponse struct {
	ID           uint     `json:"id"`
	CategoryName string   `json:"category_name"`
	Skills       []string `json:"skills"`
}

var descriptor = resource.Descriptor{
	Path:     "/skills",
	NotFound: "Item not found",
	Conflict: "Skill category with this category_name already exists",
}

type (
	Service = resource.Collection[models.SkillCategoryModel, CreateSkillCategoryDTO]
	Handler = resource.CollectionHandler[models.SkillCategoryModel, CreateSkillCategoryDTO, skillCategoryResponse]
)

func NewService(db *gorm.DB) *Service {
	table := store.NewTable[models.SkillCategoryModel](db, models.SkillCategoryModel{}.TableName())
	return resource.NewCollection(table, applyDTO)
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return resource.NewCollectionHandler(svc, toResponse, descriptor, log)
}

func applyDTO(s *models.SkillCategoryModel, dto *CreateSkillCategoryDTO) {
	s.CategoryName = dto.CategoryName
	s.Skills = append(models.StringArray{}, dto.Skills...)
}

func toResponse(s *models.SkillCategoryModel) skillCategoryResponse {
	skills := []string(s.Skills)
	if skills == nil {
		skills = []string{}
	}
	return skillCategoryResponse{ID: s.ID, CategoryName: s.CategoryName, Skills: skills}
}
