// Package store is the persistence layer: one Table per record kind, with the
// handful of operations the resource handlers need.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Table describes one record table. M is the gorm model stored in it.
type Table[M any] struct {
	name string
	db   *gorm.DB
}

// NewTable binds a model type to its table.
func NewTable[M any](db *gorm.DB, name string) *Table[M] {
	return &Table[M]{name: name, db: db}
}

// Name returns the table name.
func (t *Table[M]) Name() string { return t.name }

func (t *Table[M]) session(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx).Table(t.name)
}

// Insert stores a new row and fills in its generated id.
func (t *Table[M]) Insert(ctx context.Context, row *M) error {
	if err := t.session(ctx).Create(row).Error; err != nil {
		return t.wrap("insert", err)
	}
	return nil
}

// FindFirst returns the row with the lowest id, or nil when the table is empty.
func (t *Table[M]) FindFirst(ctx context.Context) (*M, error) {
	var row M
	if err := t.session(ctx).Order("id ASC").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, t.wrap("find first", err)
	}
	return &row, nil
}

// FindAll returns every row in insertion order.
func (t *Table[M]) FindAll(ctx context.Context) ([]M, error) {
	rows := make([]M, 0)
	if err := t.session(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, t.wrap("find all", err)
	}
	return rows, nil
}

// Update overwrites every column of an existing row.
func (t *Table[M]) Update(ctx context.Context, row *M) error {
	if err := t.session(ctx).Save(row).Error; err != nil {
		return t.wrap("update", err)
	}
	return nil
}

// DeleteByID removes the row with the given id and reports whether it existed.
func (t *Table[M]) DeleteByID(ctx context.Context, id uint) (bool, error) {
	var zero M
	res := t.session(ctx).Where("id = ?", id).Delete(&zero)
	if res.Error != nil {
		return false, t.wrap("delete", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (t *Table[M]) wrap(op string, err error) error {
	if IsUniqueViolation(err) {
		return fmt.Errorf("%s %s: %w: %v", op, t.name, ErrConstraintViolation, err)
	}
	return fmt.Errorf("%s %s: %w", op, t.name, err)
}
