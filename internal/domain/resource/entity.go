package resource

import (
	"strings"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxNameLength     = 255
	MaxCategoryLength = 100
)

type Resource struct {
	id         uuid.UUID
	name       string
	category   string
	totalStock int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewResource(name, category string, totalStock int, now time.Time) (*Resource, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if err := validate(name, category, totalStock); err != nil {
		return nil, err
	}

	return &Resource{
		id:         uuid.New(),
		name:       name,
		category:   category,
		totalStock: totalStock,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(id uuid.UUID, name, category string, totalStock int, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:         id,
		name:       name,
		category:   category,
		totalStock: totalStock,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func validate(name, category string, totalStock int) error {
	if name == "" {
		return errs.Validationf("resource name is required")
	}
	if len(name) > MaxNameLength {
		return errs.Validationf("resource name is too long (max %d characters)", MaxNameLength)
	}
	if len(category) > MaxCategoryLength {
		return errs.Validationf("category is too long (max %d characters)", MaxCategoryLength)
	}
	if totalStock < 0 {
		return errs.Validationf("total stock cannot be negative")
	}
	return nil
}

// AdjustStock adds delta to the total stock. Negative deltas take units out of the pool.
func (r *Resource) AdjustStock(delta int, now time.Time) error {
	next := r.totalStock + delta
	if next < 0 {
		return errs.Conflictf("resource %s has %d unit(s) in stock, cannot remove %d", r.id, r.totalStock, -delta)
	}
	r.totalStock = next
	r.updatedAt = now
	return nil
}

func (r *Resource) ID() uuid.UUID        { return r.id }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) Category() string     { return r.category }
func (r *Resource) TotalStock() int      { return r.totalStock }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
