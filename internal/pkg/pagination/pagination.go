package pagination

// PageSize is the fixed number of rows in every dashboard table.
const PageSize = 10

// Page is one slice of a derived list plus the numbers the pager renders
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalPages int  `json:"totalPages"`
	TotalCount int  `json:"totalCount"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
	StartItem  int  `json:"startItem"`
	EndItem    int  `json:"endItem"`
}

// TotalPages is ceil(total/size); zero records means zero pages.
func TotalPages(total, size int) int {
	if size < 1 || total < 1 {
		return 0
	}
	return (total + size - 1) / size
}

// Paginate cuts page (1-based) out of records. It deliberately does not clamp:
// a page outside [1, TotalPages] yields no items. Callers clamp with Clamp.
func Paginate[T any](records []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = PageSize
	}
	total := len(records)
	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(total, pageSize),
		TotalCount: total,
	}

	start := (page - 1) * pageSize
	if page >= 1 && start < total {
		end := start + pageSize
		if end > total {
			end = total
		}
		p.Items = append(p.Items, records[start:end]...)
		p.StartItem = start + 1
		p.EndItem = end
	}

	p.HasPrev = page > 1 && page <= p.TotalPages
	p.HasNext = page >= 1 && page < p.TotalPages
	return p
}

// Clamp bounds page to [1, totalPages]; with no pages it is 1.
func Clamp(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Link is one entry of the pager: a page number or a gap marker.
type Link struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

const edgePages = 3

// Window returns the pager entries for current of totalPages: the first three
// pages, the last three, current and its neighbours, with each gap collapsed
// into a single ellipsis.
func Window(current, totalPages int) []Link {
	links := []Link{}
	last := 0
	for p := 1; p <= totalPages; p++ {
		if !visible(p, current, totalPages) {
			continue
		}
		if last != 0 && p-last > 1 {
			links = append(links, Link{Ellipsis: true})
		}
		links = append(links, Link{Page: p, Current: p == current})
		last = p
	}
	return links
}

func visible(p, current, totalPages int) bool {
	return p <= edgePages || p > totalPages-edgePages || (p >= current-1 && p <= current+1)
}

// Query is the per-list view state the user is editing.
type Query struct {
	Search string `json:"search"`
	Sort   string `json:"sort"`
	Page   int    `json:"page"`
}

// Next applies a request to the stored query. Changing the search term or the
// sort key sends the user back to page 1; page < 1 keeps the current page.
func (q Query) Next(search, sort string, page int) Query {
	if search != q.Search || sort != q.Sort {
		return Query{Search: search, Sort: sort, Page: 1}
	}
	if page >= 1 {
		q.Page = page
	}
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}
