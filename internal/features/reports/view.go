package reports

import (
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/view"
)

// Fields is what the reports search box matches against.
var Fields view.Fields[Report] = func(r Report) []string {
	return []string{
		r.FirstName,
		r.MiddleName,
		r.LastName,
		r.Name,
		r.Description,
		r.Location,
		r.Landmark,
		r.Contact,
	}
}

// olderFirst orders by createdAt; reports without one go last.
func olderFirst(a, b Report) bool {
	switch {
	case !a.CreatedAt.Present():
		return false
	case !b.CreatedAt.Present():
		return true
	default:
		return a.CreatedAt.Before(b.CreatedAt.Time)
	}
}

func newerFirst(a, b Report) bool {
	switch {
	case !a.CreatedAt.Present():
		return false
	case !b.CreatedAt.Present():
		return true
	default:
		return a.CreatedAt.After(b.CreatedAt.Time)
	}
}

var Sorter = view.Sorter[Report]{
	"newest": newerFirst,
	"oldest": olderFirst,
}
