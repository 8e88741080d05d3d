package admins

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard/dashboardtest"
	"github.com/xyz-asif/ecocheck-admin/internal/features/notifications"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/audit"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/prompt"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/validator"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

func setup(t *testing.T, role session.Role) *dashboardtest.Harness {
	t.Helper()
	h := dashboardtest.New(t, role)
	RegisterRoutes(h.API, h.Env, NewRepository(h.Env.API), h.Guard)
	notifications.RegisterRoutes(h.API, h.Env, h.Guard)
	return h
}

func TestList_AdminRoleIsRejected(t *testing.T) {
	h := setup(t, session.RoleAdmin)
	w := h.Do("GET", "/api/v1/admins", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestList_OlderDeploymentDegrades(t *testing.T) {
	h := setup(t, session.RoleSuperAdmin)

	w := h.Do("GET", "/api/v1/admins", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var lv dashboard.ListView[Admin]
	dashboardtest.Decode(t, w, &lv)
	require.Empty(t, lv.Items)
	require.NotNil(t, lv.Degraded)
	require.False(t, lv.Degraded.Supported)
	require.Equal(t, "unsupported", lv.Degraded.Reason)
	require.Equal(t, "Admin management is not available on this server deployment.", lv.Degraded.Message)
}

func TestList_SortsNewestFirst(t *testing.T) {
	h := setup(t, session.RoleSuperAdmin)
	h.Upstream.GET("/auth/admins", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"_id": "a1", "email": "old@ecocheck.ph", "location": "Manila", "createdAt": "2023-01-01T00:00:00Z"},
			{"_id": "a2", "email": "new@ecocheck.ph", "location": "Cebu", "createdAt": "2024-01-01T00:00:00Z", "isActive": false},
		})
	})

	var lv dashboard.ListView[Admin]
	dashboardtest.Decode(t, h.Do("GET", "/api/v1/admins?sort=newest", nil), &lv)
	require.Len(t, lv.Items, 2)
	require.Equal(t, "a2", lv.Items[0].ID)
	require.False(t, lv.Items[0].IsActive)
	require.True(t, lv.Items[1].IsActive)

	dashboardtest.Decode(t, h.Do("GET", "/api/v1/admins?search=manila", nil), &lv)
	require.Len(t, lv.Items, 1)
	require.Equal(t, "a1", lv.Items[0].ID)
}

func TestCreate_ValidationBeforeNetwork(t *testing.T) {
	h := setup(t, session.RoleSuperAdmin)
	called := false
	h.Upstream.POST("/auth/register-admin", func(c *gin.Context) {
		called = true
		c.Status(http.StatusCreated)
	})

	w := h.Do("POST", "/api/v1/admins", CreateAdminRequest{
		Email: "new@ecocheck.ph", Password: "S3cure!pass", ConfirmPassword: "different", Location: "Cebu",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	res := dashboardtest.Decode(t, w, nil)
	require.Equal(t, validator.ErrPasswordMismatch.Error(), res.Message)
	require.False(t, called)
}

func TestCreate_AppendsToLoadedList(t *testing.T) {
	h := setup(t, session.RoleSuperAdmin)
	h.Upstream.GET("/auth/admins", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": []gin.H{{"_id": "a1", "email": "old@ecocheck.ph"}}})
	})
	var sent registerAdminBody
	h.Upstream.POST("/auth/register-admin", func(c *gin.Context) {
		require.NoError(t, c.ShouldBindJSON(&sent))
		c.JSON(http.StatusCreated, gin.H{"success": true, "admin": gin.H{"_id": "a2", "email": sent.Email, "location": sent.Location}})
	})
	h.Do("GET", "/api/v1/admins", nil)

	w := h.Do("POST", "/api/v1/admins", CreateAdminRequest{
		Email: " new@ecocheck.ph ", Password: "S3cure!pass", ConfirmPassword: "S3cure!pass", Location: "Cebu",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Equal(t, registerAdminBody{Email: "new@ecocheck.ph", Password: "S3cure!pass", Role: "admin", Location: "Cebu"}, sent)

	var lv dashboard.ListView[Admin]
	dashboardtest.Decode(t, h.Do("GET", "/api/v1/admins", nil), &lv)
	require.Len(t, lv.Items, 2)
	require.Equal(t, audit.OutcomeCreated, h.Audit.Events()[0].Outcome)
}

func TestCreate_ServerMessageIsShown(t *testing.T) {
	h := setup(t, session.RoleSuperAdmin)
	h.Upstream.POST("/auth/register-admin", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
	})

	w := h.Do("POST", "/api/v1/admins", CreateAdminRequest{
		Email: "dup@ecocheck.ph", Password: "S3cure!pass", ConfirmPassword: "S3cure!pass", Location: "Cebu",
	})
	require.Equal(t, http.StatusBadGateway, w.Code)
	var n prompt.Notification
	res := dashboardtest.Decode(t, w, &n)
	require.Equal(t, "Email already registered", res.Message)
	require.Equal(t, prompt.TypeError, n.Type)
}

func TestActiveChange_RollbackOnServerError(t *testing.T) {
	h := setup(t, session.RoleSuperAdmin)
	h.Upstream.GET("/auth/admins", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{{"_id": "a1", "email": "other@ecocheck.ph"}})
	})
	h.Upstream.PUT("/auth/admin/:id", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "write failed"})
	})
	h.Do("GET", "/api/v1/admins", nil)

	var p prompt.Prompt
	dashboardtest.Decode(t, h.Do("POST", "/api/v1/admins/a1/active", gin.H{"isActive": false}), &p)
	require.Equal(t, prompt.SeverityDanger, p.Severity)

	var n prompt.Notification
	dashboardtest.Decode(t, h.Do("POST", "/api/v1/prompts/"+p.ID+"/confirm", nil), &n)
	require.Equal(t, prompt.TypeError, n.Type)
	require.Equal(t, "write failed", n.Message)

	a, _ := Cache(h.Workspace()).Find("a1")
	require.True(t, a.IsActive)
}

func TestActiveChange_CannotDeactivateSelf(t *testing.T) {
	h := setup(t, session.RoleSuperAdmin)
	h.Upstream.GET("/auth/admins", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{{"_id": "me", "email": h.Session.Email}})
	})
	h.Do("GET", "/api/v1/admins", nil)

	w := h.Do("POST", "/api/v1/admins/me/active", gin.H{"isActive": false})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestValidateCreate(t *testing.T) {
	valid := CreateAdminRequest{Email: "a@ecocheck.ph", Password: "S3cure!pass", ConfirmPassword: "S3cure!pass", Location: "Cebu"}

	_, err := ValidateCreate(valid)
	assert.NoError(t, err)

	bad := valid
	bad.Email = "nope"
	_, err = ValidateCreate(bad)
	assert.ErrorIs(t, err, validator.ErrEmailInvalid)

	bad = valid
	bad.Password, bad.ConfirmPassword = "password", "password"
	_, err = ValidateCreate(bad)
	assert.ErrorIs(t, err, validator.ErrPasswordWeak)

	bad = valid
	bad.Location = " "
	_, err = ValidateCreate(bad)
	assert.ErrorIs(t, err, validator.ErrLocationRequired)

	bad = valid
	bad.Role = "owner"
	_, err = ValidateCreate(bad)
	assert.Error(t, err)

	ok := valid
	ok.Role = "super_admin"
	body, err := ValidateCreate(ok)
	assert.NoError(t, err)
	assert.Equal(t, "superadmin", body.Role)
}
