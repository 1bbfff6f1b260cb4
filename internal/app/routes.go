package app

import (
	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/modules/certification"
	"github.com/mx-space/portfolio/internal/modules/education"
	"github.com/mx-space/portfolio/internal/modules/experience"
	"github.com/mx-space/portfolio/internal/modules/health"
	"github.com/mx-space/portfolio/internal/modules/profile"
	"github.com/mx-space/portfolio/internal/modules/project"
	"github.com/mx-space/portfolio/internal/modules/skill"
	"github.com/mx-space/portfolio/internal/pkg/response"
)

const welcomeMessage = "Welcome to the Portfolio API. Manage data through /profile, /education, /experience, /projects, /skills and /certifications."

var appInfo = health.Info{
	Name:        "Portfolio API",
	Description: "A fully manageable API for a personal portfolio website.",
	Version:     "3.0.0",
}

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	log := a.logger

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	root := r.Group("")
	root.GET("/", func(c *gin.Context) { response.Message(c, welcomeMessage) })
	health.RegisterRoutes(root, db, appInfo)

	// Singletons
	profile.NewHandler(profile.NewService(db), log).RegisterRoutes(root)
	education.NewHandler(education.NewService(db), log).RegisterRoutes(root)

	// Collections
	experience.NewHandler(experience.NewService(db), log).RegisterRoutes(root)
	project.NewHandler(project.NewService(db), log).RegisterRoutes(root)
	skill.NewHandler(skill.NewService(db), log).RegisterRoutes(root)
	certification.NewHandler(certification.NewService(db), log).RegisterRoutes(root)
}
