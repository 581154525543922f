package helpers_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-newsroom/pkg/helpers"
)

func TestPasswordHasher(t *testing.T) {
	h := helpers.NewPasswordHasher(bcrypt.MinCost)
	hash, err := h.Hash("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.MinCost, cost)

	require.True(t, h.Verify(hash, "password123"))
	require.False(t, h.Verify(hash, "password124"))
	require.False(t, h.Verify("not-a-hash", "password123"))
}

func TestPasswordHasherIsSalted(t *testing.T) {
	h := helpers.NewPasswordHasher(bcrypt.MinCost)
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestPasswordHasherClampsCost(t *testing.T) {
	require.Equal(t, bcrypt.MinCost, helpers.NewPasswordHasher(1).Cost())
	require.Equal(t, bcrypt.MaxCost, helpers.NewPasswordHasher(99).Cost())
	require.Equal(t, 10, helpers.NewPasswordHasher(10).Cost())
}

func TestPasswordHasherRejectsLongPasswords(t *testing.T) {
	h := helpers.NewPasswordHasher(bcrypt.MinCost)
	_, err := h.Hash(strings.Repeat("x", 73))
	require.ErrorIs(t, err, helpers.ErrPasswordTooLong)
}
