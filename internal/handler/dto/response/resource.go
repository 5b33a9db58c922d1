package response

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/resource"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	TotalStock int       `json:"total_stock"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromResource(r *resource.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:         r.ID(),
		Name:       r.Name(),
		Category:   r.Category(),
		TotalStock: r.TotalStock(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func FromResourceViews(items []*queries.ResourceView) ([]ResourceResponse, error) {
	return mapAll[*queries.ResourceView, ResourceResponse](items, nil)
}

type MaintenanceTicketResponse = queries.MaintenanceTicketView

type ActivityLogResponse = queries.ActivityLogView
