package request

import (
	"github.com/google/uuid"
)

type JoinWaitlistRequest struct {
	ResourceID uuid.UUID      `json:"resource_id" binding:"required"`
	Quantity   int            `json:"quantity" binding:"required,min=1"`
	Priority   string         `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	Preferred  OptionalWindow `json:"preferred"`
}

type FulfillWaitlistRequest struct {
	Window OptionalWindow `json:"window"`
}
