package logs

import (
	"time"

	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
)

// DisplayLayout is how login and logout times are shown and searched.
const DisplayLayout = "Jan 2, 2006 3:04 PM"

// Entry is one login recorded by the API. LogoutTime is absent while the
// session is still open.
type Entry struct {
	Email      string              `json:"email"`
	Role       string              `json:"role"`
	IPAddress  string              `json:"ipAddress"`
	LoginTime  apiclient.Timestamp `json:"loginTime"`
	LogoutTime apiclient.Timestamp `json:"logoutTime"`
	LoginText  string              `json:"loginText"`
	LogoutText string              `json:"logoutText"`
}

type apiEntry struct {
	Email      string              `json:"email"`
	Role       string              `json:"role"`
	IPAddress  string              `json:"ipAddress"`
	IP         string              `json:"ip"`
	LoginTime  apiclient.Timestamp `json:"loginTime"`
	LogoutTime apiclient.Timestamp `json:"logoutTime"`
}

func (a apiEntry) toEntry(loc *time.Location) Entry {
	ip := a.IPAddress
	if ip == "" {
		ip = a.IP
	}
	return Entry{
		Email:      a.Email,
		Role:       a.Role,
		IPAddress:  ip,
		LoginTime:  a.LoginTime,
		LogoutTime: a.LogoutTime,
		LoginText:  formatTime(a.LoginTime, loc, "N/A"),
		LogoutText: formatTime(a.LogoutTime, loc, "Active"),
	}
}

func formatTime(t apiclient.Timestamp, loc *time.Location, absent string) string {
	if !t.Present() {
		return absent
	}
	return t.In(loc).Format(DisplayLayout)
}
