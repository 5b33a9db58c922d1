//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	t.Run("kinded errors match their kind only", func(t *testing.T) {
		err := errs.Conflictf("resource %s exhausted", "r1")

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.NotErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, "resource r1 exhausted", err.Error())
	})

	t.Run("kind survives wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.NotFoundf("reservation missing"), "load reservation")

		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("WithKind keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("boom")
		err := errs.WithKind(cause, errs.ErrInvalidState)

		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Nil(t, errs.WithKind(nil, errs.ErrInvalidState))
	})

	t.Run("marks are visible through Is", func(t *testing.T) {
		marker := errs.New("db down")
		err := errs.Mark(errors.New("dial tcp"), marker)

		assert.True(t, errs.Is(err, marker))
	})
}
