package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	require.NoError(t, Email("admin@ecocheck.ph"))
	require.NoError(t, Email("  admin@ecocheck.ph "))
	require.ErrorIs(t, Email(""), ErrEmailRequired)
	require.ErrorIs(t, Email("admin@"), ErrEmailInvalid)
}

func TestPasswordPair(t *testing.T) {
	require.NoError(t, PasswordPair("secret1", "secret1"))
	require.ErrorIs(t, PasswordPair("", ""), ErrPasswordRequired)
	require.ErrorIs(t, PasswordPair("abc", "abc"), ErrPasswordShort)
	require.ErrorIs(t, PasswordPair("secret1", "secret2"), ErrPasswordMismatch)
}

func TestIsValidName(t *testing.T) {
	require.True(t, IsValidName("Juan Dela Cruz"))
	require.True(t, IsValidName("Ma. Peña"))
	require.False(t, IsValidName("R2D2"))
	require.False(t, IsValidName(" "))
}

func TestIsStrongPassword(t *testing.T) {
	require.True(t, IsStrongPassword("Str0ng!pass"))
	require.False(t, IsStrongPassword("weakpass"))
}
