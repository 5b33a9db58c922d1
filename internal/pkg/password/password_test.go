//go:build unit

package password_test

import (
	"strings"
	"testing"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	assert.NoError(t, password.ComparePassword(hash, "password123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong-password"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrInvalidPassword)

	_, err = password.HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}
