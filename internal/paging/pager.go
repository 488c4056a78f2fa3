package paging

// DefaultPerPage is the page size a fresh pager starts with.
const DefaultPerPage = 12

// Ellipsis is the sentinel VisiblePages emits for a collapsed gap.
const Ellipsis = -1

// PerPageOptions are the page sizes the UI offers.
var PerPageOptions = []int{8, 12, 16, 20}

// Pager exposes one window of a collection at a time. Pages are 1-based.
// An empty collection still has one page.
type Pager struct {
	page    int
	perPage int
	total   int
}

func NewPager(total int) *Pager {
	if total < 0 {
		total = 0
	}
	return &Pager{page: 1, perPage: DefaultPerPage, total: total}
}

func (p *Pager) Page() int     { return p.page }
func (p *Pager) PerPage() int  { return p.perPage }
func (p *Pager) Total() int    { return p.total }
func (p *Pager) HasNext() bool { return p.page < p.TotalPages() }
func (p *Pager) HasPrev() bool { return p.page > 1 }

// TotalPages is max(1, ceil(total/perPage)): zero items still render as a
// single empty page.
func (p *Pager) TotalPages() int {
	pages := (p.total + p.perPage - 1) / p.perPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// SetTotal updates the collection size, clamping the current page back
// into range when the collection shrank under it.
func (p *Pager) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	if p.page > p.TotalPages() {
		p.page = p.TotalPages()
	}
}

// SetPage moves to page n. Out-of-range values are rejected silently and
// the current page is kept.
func (p *Pager) SetPage(n int) {
	if n >= 1 && n <= p.TotalPages() {
		p.page = n
	}
}

// SetPerPage changes the page size and resets to the first page, so the
// pager never points past the new last page.
func (p *Pager) SetPerPage(n int) {
	if n < 1 {
		return
	}
	p.perPage = n
	p.page = 1
}

func (p *Pager) Next() {
	if p.HasNext() {
		p.page++
	}
}

func (p *Pager) Prev() {
	if p.HasPrev() {
		p.page--
	}
}

func (p *Pager) First() { p.page = 1 }
func (p *Pager) Last()  { p.page = p.TotalPages() }

// Bounds returns the current window [start, end), clipped to the
// collection.
func (p *Pager) Bounds() (start, end int) {
	start = (p.page - 1) * p.perPage
	end = start + p.perPage
	if start > p.total {
		start = p.total
	}
	if end > p.total {
		end = p.total
	}
	return start, end
}

// Window slices the current page out of items. The pager's total is
// trusted to match len(items); the bounds are clipped either way.
func Window[T any](items []T, p *Pager) []T {
	start, end := p.Bounds()
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// VisiblePages is the windowed-with-ellipses page strip: always page 1
// and the last page, pages within 2 of the current one, and an Ellipsis
// marker for each collapsed gap.
func (p *Pager) VisiblePages() []int {
	totalPages := p.TotalPages()
	if totalPages == 1 {
		return []int{1}
	}

	const delta = 2

	out := make([]int, 0, 2*delta+5)
	if p.page-delta > 2 {
		out = append(out, 1, Ellipsis)
	} else {
		out = append(out, 1)
	}

	lo := p.page - delta
	if lo < 2 {
		lo = 2
	}
	hi := p.page + delta
	if hi > totalPages-1 {
		hi = totalPages - 1
	}
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}

	if p.page+delta < totalPages-1 {
		out = append(out, Ellipsis, totalPages)
	} else {
		out = append(out, totalPages)
	}

	return out
}
