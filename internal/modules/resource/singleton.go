package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"github.com/mx-space/portfolio/internal/pkg/validation"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
)

// Singleton manages a table that holds zero or one row. Once created the row
// can be replaced but never removed.
type Singleton[M any, D any] struct {
	table *store.Table[M]
	apply func(*M, *D)
}

// NewSingleton builds a singleton service. apply copies every field of the
// create shape onto a row.
func NewSingleton[M any, D any](table *store.Table[M], apply func(*M, *D)) *Singleton[M, D] {
	return &Singleton[M, D]{table: table, apply: apply}
}

// Create stores the row. It fails with ErrAlreadyExists when one is present,
// including when a concurrent create won the race at the storage level.
func (s *Singleton[M, D]) Create(ctx context.Context, dto *D) (*M, error) {
	existing, err := s.table.FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	var row M
	s.apply(&row, dto)
	if err := s.table.Insert(ctx, &row); err != nil {
		if errors.Is(err, store.ErrConstraintViolation) {
			return nil, fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}
		return nil, err
	}
	return &row, nil
}

// Get returns the row, or nil when absent.
func (s *Singleton[M, D]) Get(ctx context.Context) (*M, error) {
	return s.table.FindFirst(ctx)
}

// Update overwrites every field of the present row.
func (s *Singleton[M, D]) Update(ctx context.Context, dto *D) (*M, error) {
	row, err := s.table.FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	s.apply(row, dto)
	if err := s.table.Update(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// SingletonHandler exposes a Singleton as POST/GET/PUT on one path.
type SingletonHandler[M any, D any, R any] struct {
	svc        *Singleton[M, D]
	toResponse func(*M) R
	desc       Descriptor
	log        *zap.Logger
}

func NewSingletonHandler[M any, D any, R any](svc *Singleton[M, D], toResponse func(*M) R, desc Descriptor, log *zap.Logger) *SingletonHandler[M, D, R] {
	return &SingletonHandler[M, D, R]{svc: svc, toResponse: toResponse, desc: desc, log: log}
}

func (h *SingletonHandler[M, D, R]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST(h.desc.Path, h.create)
	rg.GET(h.desc.Path, h.get)
	rg.PUT(h.desc.Path, h.update)
}

func (h *SingletonHandler[M, D, R]) create(c *gin.Context) {
	var dto D
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.UnprocessableEntity(c, validation.Message(err))
		return
	}
	row, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		writeError(c, h.log, h.desc, err)
		return
	}
	response.OK(c, h.toResponse(row))
}

func (h *SingletonHandler[M, D, R]) get(c *gin.Context) {
	row, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, h.log, h.desc, err)
		return
	}
	if row == nil {
		response.OK(c, nil)
		return
	}
	response.OK(c, h.toResponse(row))
}

func (h *SingletonHandler[M, D, R]) update(c *gin.Context) {
	var dto D
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.UnprocessableEntity(c, validation.Message(err))
		return
	}
	row, err := h.svc.Update(c.Request.Context(), &dto)
	if err != nil {
		writeError(c, h.log, h.desc, err)
		return
	}
	response.OK(c, h.toResponse(row))
}
