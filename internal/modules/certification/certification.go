// Package certification serves certifications.
package certification

import (
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/resource"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateCertificationDTO struct {
	Issuer string `json:"issuer" binding:"required"`
	Title  string `json:"title"  binding:"required"`
}

type certificationResponse struct {
	ID     uint   `json:"id"`
	Issuer string `json:"issuer"`
	Title  string `json:"title"`
}

var descriptor = resource.Descriptor{
	Path:     "/certifications",
	NotFound: "Item not found",
}

type (
	Service = resource.Collection[models.CertificationModel, CreateCertificationDTO]
	Handler = resource.CollectionHandler[models.CertificationModel, CreateCertificationDTO, certificationResponse]
)

func NewService(db *gorm.DB) *Service {
	table := store.NewTable[models.CertificationModel](db, models.CertificationModel{}.TableName())
	return resource.NewCollection(table, applyDTO)
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return resource.NewCollectionHandler(svc, toResponse, descriptor, log)
}

func applyDTO(c *models.CertificationModel, dto *CreateCertificationDTO) {
	c.Issuer = dto.Issuer
	c.Title = dto.Title
}

func toResponse(c *models.CertificationModel) certificationResponse {
	return certificationResponse{ID: c.ID, Issuer: c.Issuer, Title: c.Title}
}
