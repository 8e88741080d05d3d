package users

import (
	"strings"

	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
)

// User is a registered citizen account.
type User struct {
	ID            string              `json:"id"`
	FirstName     string              `json:"firstName,omitempty"`
	MiddleInitial string              `json:"middleInitial,omitempty"`
	LastName      string              `json:"lastName,omitempty"`
	Name          string              `json:"name,omitempty"`
	FullName      string              `json:"fullName"`
	Email         string              `json:"email"`
	ContactNumber string              `json:"contactNumber"`
	Points        int                 `json:"points"`
	IsActive      bool                `json:"isActive"`
	Location      string              `json:"location,omitempty"`
	CreatedAt     apiclient.Timestamp `json:"createdAt"`
}

func Key(u User) string { return u.ID }

// FullNameOf derives the display name: first and last, either alone, the
// legacy single name, the local part of the email, then "User {id}".
func FullNameOf(first, last, legacy, email, id string) string {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	}
	if legacy = strings.TrimSpace(legacy); legacy != "" {
		return legacy
	}
	if local, _, _ := strings.Cut(strings.TrimSpace(email), "@"); local != "" {
		return local
	}
	return "User " + id
}

// Row is a user as listed, with the number of reports they filed.
type Row struct {
	User
	ReportCount int `json:"reportCount"`
}

type apiUser struct {
	MongoID       apiclient.ID        `json:"_id"`
	ID            apiclient.ID        `json:"id"`
	FirstName     string              `json:"firstName"`
	MiddleInitial string              `json:"middleInitial"`
	LastName      string              `json:"lastName"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	ContactNumber string              `json:"contactNumber"`
	Contact       string              `json:"contact"`
	Points        float64             `json:"points"`
	IsActive      *bool               `json:"isActive"`
	Location      string              `json:"location"`
	CreatedAt     apiclient.Timestamp `json:"createdAt"`
}

func (a apiUser) toUser() User {
	id := a.MongoID.Or(a.ID).String()
	contact := a.ContactNumber
	if contact == "" {
		contact = a.Contact
	}
	points := int(a.Points)
	if points < 0 {
		points = 0
	}

	return User{
		ID:            id,
		FirstName:     a.FirstName,
		MiddleInitial: a.MiddleInitial,
		LastName:      a.LastName,
		Name:          a.Name,
		FullName:      FullNameOf(a.FirstName, a.LastName, a.Name, a.Email, id),
		Email:         a.Email,
		ContactNumber: contact,
		Points:        points,
		IsActive:      a.IsActive == nil || *a.IsActive,
		Location:      a.Location,
		CreatedAt:     a.CreatedAt,
	}
}

// SetActiveRequest is the body of an activation toggle.
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required" example:"false"`
}
