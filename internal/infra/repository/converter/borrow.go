package converter

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/maintenance"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BorrowToInfra(r *borrow.Record) (sqlc.CreateBorrowRecordParams, error) {
	qty, err := Int32(r.Quantity(), "quantity")
	if err != nil {
		return sqlc.CreateBorrowRecordParams{}, err
	}
	return sqlc.CreateBorrowRecordParams{
		ID:                 r.ID(),
		ResourceID:         r.ResourceID(),
		ItemName:           r.ItemName(),
		Quantity:           qty,
		BorrowerID:         r.BorrowerID(),
		BorrowerContact:    r.BorrowerContact(),
		BorrowDate:         pgconv.TimeToPgtype(r.BorrowDate()),
		ExpectedReturnDate: pgconv.TimeToPgtype(r.ExpectedReturn()),
		ActualReturnDate:   pgconv.TimePtrToPgtype(r.ActualReturn()),
		Status:             string(r.Status()),
		ReturnCondition:    conditionToInfra(r.ReturnCondition()),
		ReturnNotes:        r.ReturnNotes(),
		ApprovedBy:         r.ApprovedBy(),
		ReturnedBy:         pgconv.UUIDPtrToPgtype(r.ReturnedBy()),
		CreatedAt:          pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(r.UpdatedAt()),
	}, nil
}

func BorrowUpdateToInfra(r *borrow.Record) sqlc.UpdateBorrowRecordParams {
	return sqlc.UpdateBorrowRecordParams{
		ID:               r.ID(),
		Status:           string(r.Status()),
		ReturnCondition:  conditionToInfra(r.ReturnCondition()),
		ReturnNotes:      r.ReturnNotes(),
		ActualReturnDate: pgconv.TimePtrToPgtype(r.ActualReturn()),
		ReturnedBy:       pgconv.UUIDPtrToPgtype(r.ReturnedBy()),
		UpdatedAt:        pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func BorrowFromInfra(row sqlc.BorrowRecords) *borrow.Record {
	var cond *borrow.Condition
	if row.ReturnCondition.Valid {
		c := borrow.Condition(row.ReturnCondition.String)
		cond = &c
	}
	return borrow.Reconstruct(borrow.Snapshot{
		ID:              row.ID,
		ResourceID:      row.ResourceID,
		ItemName:        row.ItemName,
		Quantity:        int(row.Quantity),
		BorrowerID:      row.BorrowerID,
		BorrowerContact: row.BorrowerContact,
		BorrowDate:      pgconv.TimeFromPgtype(row.BorrowDate),
		ExpectedReturn:  pgconv.TimeFromPgtype(row.ExpectedReturnDate),
		ActualReturn:    pgconv.TimePtrFromPgtype(row.ActualReturnDate),
		Status:          borrow.Status(row.Status),
		ReturnCondition: cond,
		ReturnNotes:     row.ReturnNotes,
		ApprovedBy:      row.ApprovedBy,
		ReturnedBy:      pgconv.UUIDPtrFromPgtype(row.ReturnedBy),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func conditionToInfra(c *borrow.Condition) pgtype.Text {
	if c == nil {
		return pgtype.Text{}
	}
	return pgconv.StringToPgtype(string(*c))
}

func MaintenanceTicketToInfra(t *maintenance.Ticket) sqlc.CreateMaintenanceTicketParams {
	return sqlc.CreateMaintenanceTicketParams{
		ID:              t.ID,
		ResourceID:      t.ResourceID,
		BorrowRecordID:  t.BorrowRecordID,
		ItemName:        t.ItemName,
		ConditionStatus: string(t.ConditionStatus),
		Description:     t.Description,
		ReportedBy:      t.ReportedBy,
		Status:          string(t.Status),
		CreatedAt:       pgconv.TimeToPgtype(t.CreatedAt),
	}
}

func ActivityLogToInfra(e *activitylog.Entry) sqlc.CreateActivityLogParams {
	return sqlc.CreateActivityLogParams{
		ID:          e.ID,
		ActorID:     pgconv.UUIDPtrToPgtype(e.ActorID),
		EntityType:  string(e.EntityType),
		EntityID:    e.EntityID,
		Action:      e.Action,
		BeforeState: e.Before,
		AfterState:  e.After,
		Details:     e.Details,
		CreatedAt:   pgconv.TimeToPgtype(e.CreatedAt),
	}
}
