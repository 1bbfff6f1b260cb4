// Package profile serves the portfolio owner's contact card, a singleton.
package profile

import (
	"strings"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/resource"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateProfileDTO is the create and replace shape. "required" also rejects
// empty strings; email format is not checked, only its uniqueness.
type CreateProfileDTO struct {
	Name         string `json:"name"          binding:"required"`
	Phone        string `json:"phone"         binding:"required"`
	Email        string `json:"email"         binding:"required"`
	LinkedinURL  string `json:"linkedin_url"  binding:"required,http_url"`
	GithubURL    string `json:"github_url"    binding:"required,http_url"`
	PortfolioURL string `json:"portfolio_url" binding:"omitempty,http_url"`
}

type profileResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	LinkedinURL  string  `json:"linkedin_url"`
	GithubURL    string  `json:"github_url"`
	PortfolioURL *string `json:"portfolio_url"`
}

var descriptor = resource.Descriptor{
	Path:          "/profile",
	AlreadyExists: "Profile already exists. Use PUT to update.",
	NotFound:      "Profile not found. Use POST to create one.",
	Conflict:      "Profile email already in use",
}

type (
	Service = resource.Singleton[models.ProfileModel, CreateProfileDTO]
	Handler = resource.SingletonHandler[models.ProfileModel, CreateProfileDTO, profileResponse]
)

func NewService(db *gorm.DB) *Service {
	table := store.NewTable[models.ProfileModel](db, models.ProfileModel{}.TableName())
	return resource.NewSingleton(table, applyDTO)
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return resource.NewSingletonHandler(svc, toResponse, descriptor, log)
}

func applyDTO(p *models.ProfileModel, dto *CreateProfileDTO) {
	p.Name = dto.Name
	p.Phone = dto.Phone
	p.Email = dto.Email
	p.LinkedinURL = dto.LinkedinURL
	p.GithubURL = dto.GithubURL
	p.PortfolioURL = nil
	if url := strings.TrimSpace(dto.PortfolioURL); url != "" {
		p.PortfolioURL = &url
	}
}

func toResponse(p *models.ProfileModel) profileResponse {
	return profileResponse{
		ID: p.ID, Name: p.Name, Phone: p.Phone, Email: p.Email,
		LinkedinURL: p.LinkedinURL, GithubURL: p.GithubURL,
		PortfolioURL: p.PortfolioURL,
	}
}
