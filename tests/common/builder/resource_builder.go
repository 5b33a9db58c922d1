//go:build unit || e2e

package builder

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/resource"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID         uuid.UUID
	Name       string
	Category   string
	TotalStock int
	CreatedAt  time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:         uuid.New(),
		Name:       "Microscope A",
		Category:   "optics",
		TotalStock: 2,
		CreatedAt:  time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

func (r *ResourceBuilder) WithStock(n int) *ResourceBuilder {
	r.TotalStock = n
	return r
}

func (r *ResourceBuilder) BuildDomain() *resource.Resource {
	return resource.Reconstruct(r.ID, r.Name, r.Category, r.TotalStock, r.CreatedAt, r.CreatedAt)
}

func (r *ResourceBuilder) BuildView() *queries.ResourceView {
	return &queries.ResourceView{
		ID:         r.ID,
		Name:       r.Name,
		Category:   r.Category,
		TotalStock: r.TotalStock,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.CreatedAt,
	}
}
