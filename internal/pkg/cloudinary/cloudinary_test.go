package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolver_WithoutCloudinary(t *testing.T) {
	r, err := NewResolver("http://localhost:5000/api", "", "", "")
	require.NoError(t, err)
	require.False(t, r.UsesCloudinary())

	require.Equal(t, "", r.Resolve(""))
	require.Equal(t, "https://cdn.example.com/p.jpg", r.Resolve("https://cdn.example.com/p.jpg"))
	require.Equal(t, "http://localhost:5000/uploads/p.jpg", r.Resolve("/uploads/p.jpg"))
	require.Equal(t, "http://localhost:5000/uploads/p.jpg", r.Resolve("uploads/p.jpg"))
}

func TestResolver_CloudinaryPublicID(t *testing.T) {
	r, err := NewResolver("http://localhost:5000/api", "demo", "key", "secret")
	require.NoError(t, err)
	require.True(t, r.UsesCloudinary())

	got := r.Resolve("reports/sample")
	require.Contains(t, got, "res.cloudinary.com/demo")
	require.Contains(t, got, "reports/sample")

	require.Equal(t, "http://localhost:5000/uploads/x.png", r.Resolve("/uploads/x.png"))
}

func TestNewResolver_RejectsRelativeBase(t *testing.T) {
	_, err := NewResolver("/api", "", "", "")
	require.Error(t, err)
}
