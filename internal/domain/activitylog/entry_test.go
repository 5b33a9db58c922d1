//go:build unit

package activitylog_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	recordID   = uuid.MustParse("00000000-0000-0000-0000-0000000000b1")
	resourceID = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	borrowerID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	adminID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	borrowedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	returnedAt = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
)

func borrowedRecord() *borrow.Record {
	return borrow.Reconstruct(borrow.Snapshot{
		ID:              recordID,
		ResourceID:      resourceID,
		ItemName:        "Microscope A",
		Quantity:        1,
		BorrowerID:      borrowerID,
		BorrowerContact: "student@lab.example",
		BorrowDate:      borrowedAt,
		ExpectedReturn:  borrowedAt.Add(48 * time.Hour),
		Status:          borrow.StatusBorrowed,
		ApprovedBy:      adminID,
		CreatedAt:       borrowedAt,
		UpdatedAt:       borrowedAt,
	})
}

func TestReturnAuditPayload(t *testing.T) {
	rec := borrowedRecord()
	before := activitylog.BorrowStateOf(rec)
	require.NoError(t, rec.Return(borrow.ConditionDamaged, "cracked eyepiece", adminID, returnedAt))

	entry, err := activitylog.Record(
		&adminID,
		activitylog.EntityBorrowRecord,
		rec.ID(),
		"return",
		before,
		activitylog.BorrowStateOf(rec),
		activitylog.ReturnDetailsOf(rec),
		returnedAt,
	)
	require.NoError(t, err)

	payload, err := json.Marshal(map[string]json.RawMessage{
		"before":  entry.Before,
		"after":   entry.After,
		"details": entry.Details,
	})
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "damaged_return", payload)
}

func TestRecordWithoutState(t *testing.T) {
	entry, err := activitylog.Record(nil, activitylog.EntityResource, resourceID, "restock", nil, activitylog.StockState{TotalStock: 3}, nil, returnedAt)
	require.NoError(t, err)

	assert.Nil(t, entry.ActorID)
	assert.JSONEq(t, `{}`, string(entry.Before))
	assert.JSONEq(t, `{"total_stock":3}`, string(entry.After))
	assert.JSONEq(t, `{}`, string(entry.Details))
	assert.NotEqual(t, uuid.Nil, entry.ID)
}
