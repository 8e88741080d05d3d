package admins

import (
	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
)

// Admin is a dashboard operator account.
type Admin struct {
	ID        string              `json:"id"`
	Email     string              `json:"email"`
	Role      string              `json:"role,omitempty"`
	Location  string              `json:"location"`
	IsActive  bool                `json:"isActive"`
	CreatedAt apiclient.Timestamp `json:"createdAt"`
}

func Key(a Admin) string { return a.ID }

type apiAdmin struct {
	MongoID   apiclient.ID        `json:"_id"`
	ID        apiclient.ID        `json:"id"`
	Email     string              `json:"email"`
	Role      string              `json:"role"`
	Location  string              `json:"location"`
	IsActive  *bool               `json:"isActive"`
	CreatedAt apiclient.Timestamp `json:"createdAt"`
}

func (a apiAdmin) toAdmin() Admin {
	return Admin{
		ID:        a.MongoID.Or(a.ID).String(),
		Email:     a.Email,
		Role:      a.Role,
		Location:  a.Location,
		IsActive:  a.IsActive == nil || *a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}

// CreateAdminRequest is the add-admin form.
type CreateAdminRequest struct {
	Email           string `json:"email" example:"admin@ecocheck.ph"`
	Password        string `json:"password" example:"S3cure!pass"`
	ConfirmPassword string `json:"confirmPassword" example:"S3cure!pass"`
	Location        string `json:"location" example:"Quezon City"`
	Role            string `json:"role,omitempty" example:"admin"`
}

// registerAdminBody is what the API expects for a new admin.
type registerAdminBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Location string `json:"location"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required" example:"false"`
}
