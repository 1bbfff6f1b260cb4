package resource

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
)

var (
	// ErrAlreadyExists is returned when creating a singleton that is present.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFound is returned when the target of an update or delete is absent.
	ErrNotFound = errors.New("not found")
)

// Descriptor names a resource and the messages its failures carry.
type Descriptor struct {
	Path          string
	AlreadyExists string
	NotFound      string
	Conflict      string
}

func (d Descriptor) conflictMessage() string {
	if d.Conflict != "" {
		return d.Conflict
	}
	return "Item violates a uniqueness constraint"
}

func writeError(c *gin.Context, log *zap.Logger, d Descriptor, err error) {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		response.BadRequest(c, d.AlreadyExists)
	case errors.Is(err, ErrNotFound):
		response.NotFoundMsg(c, d.NotFound)
	case errors.Is(err, store.ErrConstraintViolation):
		response.BadRequest(c, d.conflictMessage())
	default:
		_ = c.Error(err)
		log.Error("resource operation failed",
			zap.String("resource", d.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		response.InternalError(c, err)
	}
}
