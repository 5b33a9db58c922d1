package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type MaintenanceTicketView struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resource_id"`
	BorrowRecordID  uuid.UUID `json:"borrow_record_id"`
	ItemName        string    `json:"item_name"`
	ConditionStatus string    `json:"condition_status"`
	Description     string    `json:"description"`
	ReportedBy      uuid.UUID `json:"reported_by"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type MaintenanceReadStore interface {
	List(ctx context.Context, status string, after *Keyset, limit int32) ([]*MaintenanceTicketView, error)
}

type MaintenanceQueries interface {
	List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*MaintenanceTicketView, *Cursor, error)
}

type maintenanceQueriesImpl struct {
	store MaintenanceReadStore
}

func NewMaintenanceQueries(store MaintenanceReadStore) MaintenanceQueries {
	return &maintenanceQueriesImpl{store: store}
}

func (q *maintenanceQueriesImpl) List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*MaintenanceTicketView, *Cursor, error) {
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, status, after, lookaheadLimit(limit))
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, ValidateLimit(limit), func(t *MaintenanceTicketView) (time.Time, uuid.UUID) {
		return t.CreatedAt, t.ID
	})
	return rows, next, nil
}
