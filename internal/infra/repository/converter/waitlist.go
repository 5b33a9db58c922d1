package converter

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func WaitlistEntryToInfra(e *waitlist.Entry) (sqlc.CreateWaitingListEntryParams, error) {
	qty, err := Int32(e.Quantity(), "quantity")
	if err != nil {
		return sqlc.CreateWaitingListEntryParams{}, err
	}
	start, end := preferredToInfra(e.Preferred())
	return sqlc.CreateWaitingListEntryParams{
		ID:             e.ID(),
		ResourceID:     e.ResourceID(),
		RequesterID:    e.RequesterID(),
		Quantity:       qty,
		PreferredStart: start,
		PreferredEnd:   end,
		Priority:       string(e.Priority()),
		Status:         string(e.Status()),
		NotifiedAt:     pgconv.TimePtrToPgtype(e.NotifiedAt()),
		FulfilledAt:    pgconv.TimePtrToPgtype(e.FulfilledAt()),
		ReservationID:  pgconv.UUIDPtrToPgtype(e.ReservationID()),
		CreatedAt:      pgconv.TimeToPgtype(e.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(e.UpdatedAt()),
	}, nil
}

func WaitlistEntryUpdateToInfra(e *waitlist.Entry) sqlc.UpdateWaitingListEntryParams {
	return sqlc.UpdateWaitingListEntryParams{
		ID:            e.ID(),
		Status:        string(e.Status()),
		NotifiedAt:    pgconv.TimePtrToPgtype(e.NotifiedAt()),
		FulfilledAt:   pgconv.TimePtrToPgtype(e.FulfilledAt()),
		ReservationID: pgconv.UUIDPtrToPgtype(e.ReservationID()),
		UpdatedAt:     pgconv.TimeToPgtype(e.UpdatedAt()),
	}
}

func WaitlistEntryFromInfra(row sqlc.WaitingListEntries) *waitlist.Entry {
	return waitlist.Reconstruct(waitlist.Snapshot{
		ID:            row.ID,
		ResourceID:    row.ResourceID,
		RequesterID:   row.RequesterID,
		Quantity:      int(row.Quantity),
		Preferred:     PreferredFromInfra(row.PreferredStart, row.PreferredEnd),
		Priority:      waitlist.Priority(row.Priority),
		Status:        waitlist.Status(row.Status),
		NotifiedAt:    pgconv.TimePtrFromPgtype(row.NotifiedAt),
		FulfilledAt:   pgconv.TimePtrFromPgtype(row.FulfilledAt),
		ReservationID: pgconv.UUIDPtrFromPgtype(row.ReservationID),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func preferredToInfra(w *availability.Interval) (pgtype.Timestamptz, pgtype.Timestamptz) {
	if w == nil {
		return pgtype.Timestamptz{}, pgtype.Timestamptz{}
	}
	return pgconv.TimeToPgtype(w.Start), pgconv.TimeToPgtype(w.End)
}

func PreferredFromInfra(start, end pgtype.Timestamptz) *availability.Interval {
	if !start.Valid || !end.Valid {
		return nil
	}
	return &availability.Interval{Start: start.Time, End: end.Time}
}
