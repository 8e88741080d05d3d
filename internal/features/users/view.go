package users

import (
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/view"
)

var Fields view.Fields[Row] = func(r Row) []string {
	return []string{r.FullName, r.Email, r.ContactNumber}
}

func fewerReports(a, b Row) bool { return a.ReportCount < b.ReportCount }

func fewerPoints(a, b Row) bool { return a.Points < b.Points }

var Sorter = view.Sorter[Row]{
	"reportsHigh": view.Descending(fewerReports),
	"reportsLow":  fewerReports,
	"pointsHigh":  view.Descending(fewerPoints),
	"pointsLow":   fewerPoints,
}

// Rows attaches report counts to users, keeping their order.
func Rows(items []User, reportCounts map[string]int) []Row {
	rows := make([]Row, len(items))
	for i, u := range items {
		rows[i] = Row{User: u, ReportCount: reportCounts[u.ID]}
	}
	return rows
}
