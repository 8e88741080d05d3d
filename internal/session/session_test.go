package session

import (
	"context"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	apperrors "github.com/xyz-asif/ecocheck-admin/pkg/errors"
)

func token(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	s, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func TestParseRole(t *testing.T) {
	tests := map[string]Role{
		"superadmin":  RoleSuperAdmin,
		"super_admin": RoleSuperAdmin,
		"SUPERADMIN":  RoleSuperAdmin,
		"SuperAdmin":  RoleNone,
		"admin":       RoleAdmin,
		"Admin":       RoleNone,
		"user":        RoleNone,
		"":            RoleNone,
	}
	for raw, want := range tests {
		require.Equal(t, want, ParseRole(raw), raw)
	}
}

func TestResolveClaims_ExplicitWins(t *testing.T) {
	tok := token(t, gojwt.MapClaims{"role": "admin", "location": "Cebu"})

	c := ResolveClaims(Explicit{Role: "super_admin"}, tok)
	require.Equal(t, RoleSuperAdmin, c.Role)
	require.Equal(t, "Cebu", c.Location, "location falls back independently")
}

func TestResolveClaims_TokenFallback(t *testing.T) {
	tok := token(t, gojwt.MapClaims{"userType": "SUPERADMIN", "location": "Davao"})

	c := ResolveClaims(Explicit{}, tok)
	require.Equal(t, RoleSuperAdmin, c.Role)
	require.Equal(t, "Davao", c.Location)
}

func TestResolveClaims_UndecodableTokenIsNoRole(t *testing.T) {
	c := ResolveClaims(Explicit{}, "opaque")
	require.Equal(t, RoleNone, c.Role)
	require.Equal(t, "", c.Location)

	nav := NavigationFor(c.Role)
	require.True(t, nav.Reports)
	require.False(t, nav.Admins)
	require.False(t, nav.LoginLogs)
}

func TestNavigationFor_SuperAdmin(t *testing.T) {
	nav := NavigationFor(RoleSuperAdmin)
	require.True(t, nav.Admins)
	require.True(t, nav.LoginLogs)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New("tok", Claims{Role: RoleAdmin, Location: "Cebu"}, "a@eco.ph", time.Hour)

	require.NoError(t, store.Save(ctx, s))
	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, "tok", got.Token)
	require.Equal(t, RoleAdmin, got.Role)

	got.Token = "mutated"
	again, _ := store.Get(ctx, s.ID)
	require.Equal(t, "tok", again.Token)

	require.NoError(t, store.Delete(ctx, s.ID))
	_, err = store.Get(ctx, s.ID)
	require.ErrorIs(t, err, apperrors.ErrSessionMissing)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New("tok", Claims{}, "", time.Minute)
	require.NoError(t, store.Save(ctx, s))

	store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err := store.Get(ctx, s.ID)
	require.ErrorIs(t, err, apperrors.ErrSessionMissing)
}

func TestMemoryStore_CleanupRemovesExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for i := 0; i < 1000; i++ {
		require.NoError(t, store.Save(ctx, New("tok", Claims{}, "", time.Minute)))
	}
	live := New("tok", Claims{}, "", time.Hour)
	require.NoError(t, store.Save(ctx, live))

	store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	require.Equal(t, 1000, store.Cleanup())
	require.Equal(t, 1, store.Len())

	_, err := store.Get(ctx, live.ID)
	require.NoError(t, err)
}

func TestMemoryStore_StartCleanupStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, New("tok", Claims{}, "", time.Millisecond)))

	store.StartCleanup(ctx, 5*time.Millisecond)
	require.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
}
