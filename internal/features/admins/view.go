package admins

import (
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/view"
)

var Fields view.Fields[Admin] = func(a Admin) []string {
	return []string{a.Email, a.Location}
}

func createdBefore(a, b Admin) bool {
	switch {
	case !a.CreatedAt.Present():
		return false
	case !b.CreatedAt.Present():
		return true
	default:
		return a.CreatedAt.Before(b.CreatedAt.Time)
	}
}

func createdAfter(a, b Admin) bool {
	switch {
	case !a.CreatedAt.Present():
		return false
	case !b.CreatedAt.Present():
		return true
	default:
		return a.CreatedAt.After(b.CreatedAt.Time)
	}
}

var Sorter = view.Sorter[Admin]{
	"newest": createdAfter,
	"oldest": createdBefore,
}
