// Package health serves the liveness and service metadata endpoints.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/database"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// Info describes the service on GET /info.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, info Info) {
	rg.GET("/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, info)
	})

	rg.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		if err := database.Ping(ctx, db); err != nil {
			_ = c.Error(err)
			response.ServiceUnavailable(c, gin.H{
				"status":   "degraded",
				"database": false,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": true,
		})
	})
}
