package reports

import (
	"strings"

	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
)

// Status is a report's handling state as the API spells it.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusOnGoing  Status = "On Going"
	StatusResolved Status = "Resolved"
)

var Statuses = []Status{StatusPending, StatusOnGoing, StatusResolved}

// ParseStatus accepts the wire spelling plus the OnGoing/ongoing variants.
func ParseStatus(raw string) (Status, bool) {
	switch strings.ToLower(strings.Join(strings.Fields(raw), "")) {
	case "pending":
		return StatusPending, true
	case "ongoing":
		return StatusOnGoing, true
	case "resolved":
		return StatusResolved, true
	default:
		return "", false
	}
}

// Display is the status shown for a report; an absent status reads Pending.
func (s Status) Display() Status {
	if parsed, ok := ParseStatus(string(s)); ok {
		return parsed
	}
	return StatusPending
}

// Report is a citizen-submitted incident as the dashboard shows it.
// Status is kept exactly as the API sent it, which may be empty.
type Report struct {
	ID            string              `json:"id"`
	FirstName     string              `json:"firstName,omitempty"`
	MiddleName    string              `json:"middleName,omitempty"`
	LastName      string              `json:"lastName,omitempty"`
	Name          string              `json:"name,omitempty"`
	ReporterName  string              `json:"reporterName"`
	Contact       string              `json:"contact"`
	Description   string              `json:"description"`
	Location      string              `json:"location"`
	Landmark      string              `json:"landmark,omitempty"`
	PhotoURL      string              `json:"photoUrl,omitempty"`
	Status        Status              `json:"status,omitempty"`
	DisplayStatus Status              `json:"displayStatus"`
	CreatedAt     apiclient.Timestamp `json:"createdAt"`
	UpdatedAt     apiclient.Timestamp `json:"updatedAt"`
	User          string              `json:"user,omitempty"`
}

func Key(r Report) string { return r.ID }

// SetStatus changes the status and what is displayed for it together.
func (r *Report) SetStatus(s Status) {
	r.Status = s
	r.DisplayStatus = s.Display()
}

// ReporterNameOf joins the name parts, falling back to the legacy single name.
func ReporterNameOf(first, middle, last, legacy string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{first, middle, last} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if legacy = strings.TrimSpace(legacy); legacy != "" {
		return legacy
	}
	return "Unknown"
}

// apiReport is a report on the wire. Field names have drifted between API
// versions, so several spellings are accepted.
type apiReport struct {
	MongoID       apiclient.ID        `json:"_id"`
	ID            apiclient.ID        `json:"id"`
	FirstName     string              `json:"firstName"`
	MiddleName    string              `json:"middleName"`
	MiddleInitial string              `json:"middleInitial"`
	LastName      string              `json:"lastName"`
	Name          string              `json:"name"`
	Contact       string              `json:"contact"`
	ContactNumber string              `json:"contactNumber"`
	Description   string              `json:"description"`
	Location      string              `json:"location"`
	Landmark      string              `json:"landmark"`
	PhotoURL      string              `json:"photoUrl"`
	Status        string              `json:"status"`
	CreatedAt     apiclient.Timestamp `json:"createdAt"`
	UpdatedAt     apiclient.Timestamp `json:"updatedAt"`
	User          apiclient.ID        `json:"user"`
}

// PhotoResolver turns stored photo references into absolute URLs.
type PhotoResolver interface {
	Resolve(photo string) string
}

func (a apiReport) toReport(photos PhotoResolver) Report {
	middle := a.MiddleName
	if middle == "" {
		middle = a.MiddleInitial
	}
	contact := a.Contact
	if contact == "" {
		contact = a.ContactNumber
	}
	photo := a.PhotoURL
	if photos != nil {
		photo = photos.Resolve(photo)
	}

	r := Report{
		ID:           a.MongoID.Or(a.ID).String(),
		FirstName:    a.FirstName,
		MiddleName:   middle,
		LastName:     a.LastName,
		Name:         a.Name,
		ReporterName: ReporterNameOf(a.FirstName, middle, a.LastName, a.Name),
		Contact:      contact,
		Description:  a.Description,
		Location:     a.Location,
		Landmark:     a.Landmark,
		PhotoURL:     photo,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		User:         a.User.String(),
	}
	if s, ok := ParseStatus(a.Status); ok {
		r.Status = s
	} else {
		r.Status = Status(a.Status)
	}
	r.DisplayStatus = r.Status.Display()
	return r
}

// UpdateStatusRequest is the body of a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Resolved"`
}
