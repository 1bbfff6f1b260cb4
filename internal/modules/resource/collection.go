package resource

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"github.com/mx-space/portfolio/internal/pkg/validation"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
)

const deletedMessage = "Item deleted successfully"

// Collection manages a table of independent rows. Rows are created and
// deleted; amending one means deleting it and creating a new one.
type Collection[M any, D any] struct {
	table *store.Table[M]
	apply func(*M, *D)
}

func NewCollection[M any, D any](table *store.Table[M], apply func(*M, *D)) *Collection[M, D] {
	return &Collection[M, D]{table: table, apply: apply}
}

// Create stores a new row. Unique index violations surface as
// store.ErrConstraintViolation.
func (s *Collection[M, D]) Create(ctx context.Context, dto *D) (*M, error) {
	var row M
	s.apply(&row, dto)
	if err := s.table.Insert(ctx, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns every row in creation order.
func (s *Collection[M, D]) List(ctx context.Context) ([]M, error) {
	return s.table.FindAll(ctx)
}

// Delete removes the row with the given id, or fails with ErrNotFound.
func (s *Collection[M, D]) Delete(ctx context.Context, id uint) error {
	existed, err := s.table.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}

// CollectionHandler exposes a Collection as POST/GET on a path and DELETE on
// path/:id.
type CollectionHandler[M any, D any, R any] struct {
	svc        *Collection[M, D]
	toResponse func(*M) R
	desc       Descriptor
	log        *zap.Logger
}

func NewCollectionHandler[M any, D any, R any](svc *Collection[M, D], toResponse func(*M) R, desc Descriptor, log *zap.Logger) *CollectionHandler[M, D, R] {
	return &CollectionHandler[M, D, R]{svc: svc, toResponse: toResponse, desc: desc, log: log}
}

func (h *CollectionHandler[M, D, R]) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group(h.desc.Path)
	g.POST("", h.create)
	g.GET("", h.list)
	g.DELETE("/:id", h.delete)
}

func (h *CollectionHandler[M, D, R]) create(c *gin.Context) {
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

func (h *CollectionHandler[M, D, R]) list(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, h.desc, err)
		return
	}
	out := make([]R, len(rows))
	for i := range rows {
		out[i] = h.toResponse(&rows[i])
	}
	response.OK(c, out)
}

func (h *CollectionHandler[M, D, R]) delete(c *gin.Context) {
	id, ok, err := parseID(c.Param("id"))
	if err != nil {
		response.UnprocessableEntity(c, "id: must be an integer")
		return
	}
	if !ok {
		writeError(c, h.log, h.desc, ErrNotFound)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, h.desc, err)
		return
	}
	response.Message(c, deletedMessage)
}

// parseID reads a path id. Integers that no row can carry (zero, negative or
// out of range) report ok=false; only non-integers are an error.
func parseID(raw string) (id uint, ok bool, err error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, false, nil
		}
		return 0, false, err
	}
	if n <= 0 {
		return 0, false, nil
	}
	return uint(n), true, nil
}
