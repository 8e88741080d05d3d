package overview

import (
	"time"

	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/features/reports"
	"github.com/xyz-asif/ecocheck-admin/internal/features/users"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

// TrendDays is how many calendar days the daily trend covers, today included.
const TrendDays = 7

// StatusCounts counts reports by displayed status. A report without a
// status counts as pending.
type StatusCounts struct {
	Pending  int `json:"pending"`
	OnGoing  int `json:"onGoing"`
	Resolved int `json:"resolved"`
}

// Overview is the landing page of the dashboard.
type Overview struct {
	TotalReports int                `json:"totalReports"`
	Statuses     StatusCounts       `json:"statuses"`
	Distribution []dashboard.Slice  `json:"distribution"`
	Trend        []dashboard.Day    `json:"trend"`
	TotalUsers   int                `json:"totalUsers"`
	ActiveUsers  int                `json:"activeUsers"`
	Navigation   session.Navigation `json:"navigation"`

	Degraded []apiclient.Capability `json:"degraded,omitempty"`
}

// Compose builds the overview from the cached collections. now decides both
// the last trend day and the location calendar days are cut in.
func Compose(reportItems []reports.Report, userItems []users.User, role session.Role, now time.Time) Overview {
	var counts StatusCounts
	created := make([]time.Time, 0, len(reportItems))
	for _, r := range reportItems {
		switch r.Status.Display() {
		case reports.StatusResolved:
			counts.Resolved++
		case reports.StatusOnGoing:
			counts.OnGoing++
		default:
			counts.Pending++
		}
		created = append(created, r.CreatedAt.Time)
	}

	active := 0
	for _, u := range userItems {
		if u.IsActive {
			active++
		}
	}

	return Overview{
		TotalReports: len(reportItems),
		Statuses:     counts,
		Distribution: dashboard.Distribution(
			[]string{string(reports.StatusResolved), string(reports.StatusOnGoing), string(reports.StatusPending)},
			[]int{counts.Resolved, counts.OnGoing, counts.Pending},
		),
		Trend:       dashboard.DailyTrend(created, now, TrendDays),
		TotalUsers:  len(userItems),
		ActiveUsers: active,
		Navigation:  session.NavigationFor(role),
	}
}
