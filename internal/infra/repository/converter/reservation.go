package converter

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"
)

func ReservationToInfra(r *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	qty, err := Int32(r.Quantity(), "quantity")
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}
	return sqlc.CreateReservationParams{
		ID:              r.ID(),
		ResourceID:      r.ResourceID(),
		RequesterID:     r.RequesterID(),
		ReservationDate: pgconv.DateToPgtype(r.Date()),
		StartAt:         pgconv.TimeToPgtype(r.Window().Start),
		EndAt:           pgconv.TimeToPgtype(r.Window().End),
		Quantity:        qty,
		Status:          r.Status().String(),
		Purpose:         r.Purpose(),
		Notes:           r.Notes(),
		ApprovedBy:      pgconv.UUIDPtrToPgtype(r.ApprovedBy()),
		ApprovedAt:      pgconv.TimePtrToPgtype(r.ApprovedAt()),
		RejectionReason: pgconv.StringPtrToPgtype(r.RejectionReason()),
		CreatedAt:       pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(r.UpdatedAt()),
	}, nil
}

func ReservationUpdateToInfra(r *reservation.Reservation) sqlc.UpdateReservationParams {
	return sqlc.UpdateReservationParams{
		ID:              r.ID(),
		Status:          r.Status().String(),
		ApprovedBy:      pgconv.UUIDPtrToPgtype(r.ApprovedBy()),
		ApprovedAt:      pgconv.TimePtrToPgtype(r.ApprovedAt()),
		RejectionReason: pgconv.StringPtrToPgtype(r.RejectionReason()),
		UpdatedAt:       pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReservationFromInfra(row sqlc.Reservations, loc *time.Location) *reservation.Reservation {
	return reservation.Reconstruct(reservation.Snapshot{
		ID:          row.ID,
		ResourceID:  row.ResourceID,
		RequesterID: row.RequesterID,
		Date:        pgconv.DateFromPgtype(row.ReservationDate, loc),
		Window: availability.Interval{
			Start: pgconv.TimeFromPgtype(row.StartAt).In(loc),
			End:   pgconv.TimeFromPgtype(row.EndAt).In(loc),
		},
		Quantity:        int(row.Quantity),
		Status:          reservation.Status(row.Status),
		Purpose:         row.Purpose,
		Notes:           row.Notes,
		ApprovedBy:      pgconv.UUIDPtrFromPgtype(row.ApprovedBy),
		ApprovedAt:      pgconv.TimePtrFromPgtype(row.ApprovedAt),
		RejectionReason: pgconv.StringPtrFromPgtype(row.RejectionReason),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func CommitmentsFromInfra(rows []sqlc.ListApprovedOverlappingRow) []availability.Commitment {
	out := make([]availability.Commitment, 0, len(rows))
	for _, row := range rows {
		out = append(out, availability.Commitment{
			Interval: availability.Interval{
				Start: pgconv.TimeFromPgtype(row.StartAt),
				End:   pgconv.TimeFromPgtype(row.EndAt),
			},
			Quantity: int(row.Quantity),
		})
	}
	return out
}
