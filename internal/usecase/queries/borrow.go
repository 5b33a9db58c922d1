package queries

//go:generate mockgen -source=borrow.go -destination=../../../tests/mock/queries/borrow.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type BorrowView struct {
	ID                 uuid.UUID  `json:"id"`
	ResourceID         uuid.UUID  `json:"resource_id"`
	ItemName           string     `json:"item_name"`
	Quantity           int        `json:"quantity"`
	BorrowerID         uuid.UUID  `json:"borrower_id"`
	BorrowerContact    string     `json:"borrower_contact"`
	BorrowDate         time.Time  `json:"borrow_date"`
	ExpectedReturnDate time.Time  `json:"expected_return_date"`
	ActualReturnDate   *time.Time `json:"actual_return_date,omitempty"`
	Status             string     `json:"status"`
	ReturnCondition    *string    `json:"return_condition,omitempty"`
	ReturnNotes        string     `json:"return_notes"`
	ApprovedBy         uuid.UUID  `json:"approved_by"`
	ReturnedBy         *uuid.UUID `json:"returned_by,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type BorrowFilter struct {
	Status     string
	BorrowerID *uuid.UUID
}

type BorrowReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BorrowView, error)
	List(ctx context.Context, filter BorrowFilter, after *Keyset, limit int32) ([]*BorrowView, error)
}

type BorrowQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BorrowView, error)
	List(ctx context.Context, actor shared.Actor, filter BorrowFilter, cursor *Cursor, limit int) ([]*BorrowView, *Cursor, error)
}

type borrowQueriesImpl struct {
	store BorrowReadStore
}

func NewBorrowQueries(store BorrowReadStore) BorrowQueries {
	return &borrowQueriesImpl{store: store}
}

func (q *borrowQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BorrowView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBorrowNotFound
		}
		return nil, err
	}
	if b.BorrowerID != actor.ID && !actor.IsAdmin() {
		return nil, ErrBorrowAccess
	}
	return b, nil
}

// List shows non-admin actors only their own records.
func (q *borrowQueriesImpl) List(ctx context.Context, actor shared.Actor, filter BorrowFilter, cursor *Cursor, limit int) ([]*BorrowView, *Cursor, error) {
	if !actor.IsAdmin() {
		self := actor.ID
		filter.BorrowerID = &self
	}
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filter, after, lookaheadLimit(limit))
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, ValidateLimit(limit), func(b *BorrowView) (time.Time, uuid.UUID) {
		return b.CreatedAt, b.ID
	})
	return rows, next, nil
}
