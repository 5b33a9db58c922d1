//go:build unit

package borrow_test

import (
	"errors"
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func issue(t *testing.T) *borrow.Record {
	t.Helper()
	rec, err := borrow.Issue(borrow.IssueParams{
		ResourceID:      uuid.New(),
		ItemName:        "Microscope A",
		Quantity:        2,
		BorrowerID:      uuid.New(),
		BorrowerContact: " 0917 000 0000 ",
		ExpectedReturn:  now.Add(24 * time.Hour),
		ApprovedBy:      uuid.New(),
	}, now)
	require.NoError(t, err)
	return rec
}

func TestIssue(t *testing.T) {
	rec := issue(t)
	assert.Equal(t, borrow.StatusBorrowed, rec.Status())
	assert.Equal(t, "0917 000 0000", rec.BorrowerContact())
	assert.Nil(t, rec.ReturnCondition())
	assert.Nil(t, rec.ActualReturn())

	_, err := borrow.Issue(borrow.IssueParams{
		ResourceID:     uuid.New(),
		Quantity:       0,
		BorrowerID:     uuid.New(),
		ExpectedReturn: now.Add(time.Hour),
	}, now)
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = borrow.Issue(borrow.IssueParams{
		ResourceID:     uuid.New(),
		Quantity:       1,
		BorrowerID:     uuid.New(),
		ExpectedReturn: now.Add(-time.Hour),
	}, now)
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestReturn(t *testing.T) {
	t.Run("records condition, notes and returner", func(t *testing.T) {
		rec := issue(t)
		actor := uuid.New()
		later := now.Add(3 * time.Hour)

		require.NoError(t, rec.Return(borrow.ConditionNeedsRepair, " focus knob loose ", actor, later))
		assert.Equal(t, borrow.StatusReturned, rec.Status())
		assert.Equal(t, borrow.ConditionNeedsRepair, *rec.ReturnCondition())
		assert.Equal(t, "focus knob loose", rec.ReturnNotes())
		assert.Equal(t, actor, *rec.ReturnedBy())
		assert.Equal(t, later, *rec.ActualReturn())
	})

	t.Run("second return is an error", func(t *testing.T) {
		rec := issue(t)
		require.NoError(t, rec.Return(borrow.ConditionGood, "", uuid.New(), now))
		err := rec.Return(borrow.ConditionGood, "", uuid.New(), now)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("unknown condition is rejected before any change", func(t *testing.T) {
		rec := issue(t)
		require.ErrorIs(t, rec.Return("lost", "", uuid.New(), now), errs.ErrValidation)
		assert.Equal(t, borrow.StatusBorrowed, rec.Status())
	})
}

func TestReturnProcessingError(t *testing.T) {
	cause := errors.New("insert maintenance ticket: connection reset")
	err := error(&borrow.ReturnProcessingError{BorrowID: uuid.New(), Cause: cause})

	assert.ErrorIs(t, err, errs.ErrReturnProcessing)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "did not take effect")
}

func TestParseCondition(t *testing.T) {
	for _, s := range []string{"good", "damaged", "needs_repair"} {
		c, err := borrow.ParseCondition(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(c))
	}
	_, err := borrow.ParseCondition("broken")
	require.ErrorIs(t, err, errs.ErrValidation)

	assert.False(t, borrow.ConditionGood.NeedsMaintenance())
	assert.True(t, borrow.ConditionDamaged.NeedsMaintenance())
	assert.True(t, borrow.ConditionNeedsRepair.NeedsMaintenance())
}
