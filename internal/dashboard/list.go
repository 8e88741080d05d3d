package dashboard

import (
	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/pagination"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/view"
)

// ListView is the body of every table endpoint.
type ListView[T any] struct {
	pagination.Page[T]
	Query    pagination.Query      `json:"query"`
	Pages    []pagination.Link     `json:"pages"`
	SortKeys []string              `json:"sortKeys"`
	Degraded *apiclient.Capability `json:"degraded,omitempty"`
}

// Derive filters, sorts and pages records for q. The page is clamped here, the
// one place that owns pager state, and the clamped query is returned for storing.
func Derive[T any](records []T, q pagination.Query, fields view.Fields[T], sorter view.Sorter[T]) (ListView[T], pagination.Query) {
	derived := view.Sort(view.Filter(records, q.Search, fields), sorter.Lookup(q.Sort))

	q.Page = pagination.Clamp(q.Page, pagination.TotalPages(len(derived), pagination.PageSize))
	page := pagination.Paginate(derived, q.Page, pagination.PageSize)

	return ListView[T]{
		Page:     page,
		Query:    q,
		Pages:    pagination.Window(q.Page, page.TotalPages),
		SortKeys: sorter.Keys(),
	}, q
}

// Unavailable is the empty list shown when a feature is degraded.
func Unavailable[T any](q pagination.Query, sorter view.Sorter[T], c apiclient.Capability) ListView[T] {
	q.Page = 1
	return ListView[T]{
		Page:     pagination.Paginate([]T{}, 1, pagination.PageSize),
		Query:    q,
		Pages:    []pagination.Link{},
		SortKeys: sorter.Keys(),
		Degraded: &c,
	}
}
