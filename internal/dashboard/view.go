package dashboard

import (
	"sync"

	"hrboard/internal/employee"
	"hrboard/internal/feed"
	"hrboard/internal/paging"
	"hrboard/internal/search"
)

type Mode string

const (
	ModePaged    Mode = "paged"
	ModeInfinite Mode = "infinite"
)

// View is one session's dashboard state: the filter engine, the page
// selector, and the incremental revealer, all over one directory
// snapshot. The filtered collection is re-derived whenever the filters or
// the snapshot change; both presentation components are then pointed at
// the new size. One mutex serializes everything; the components
// themselves are single-owner.
type View struct {
	mu sync.Mutex

	engine   *search.Engine
	pager    *paging.Pager
	revealer *feed.Revealer
	mode     Mode

	employees []employee.Employee
	filtered  []employee.Employee
}

func NewView(employees []employee.Employee, opts ...feed.Option) *View {
	v := &View{
		engine:    search.NewEngine(),
		pager:     paging.NewPager(len(employees)),
		revealer:  feed.NewRevealer(len(employees), opts...),
		mode:      ModePaged,
		employees: employees,
		filtered:  employees,
	}
	return v
}

// State is the render model returned after every operation.
type State struct {
	Mode                 Mode                `json:"mode"`
	Filters              search.Filters      `json:"filters"`
	Items                []employee.Employee `json:"items"`
	TotalItems           int                 `json:"totalItems"`
	Page                 int                 `json:"page"`
	TotalPages           int                 `json:"totalPages"`
	PerPage              int                 `json:"perPage"`
	VisiblePages         []int               `json:"visiblePages"`
	Revealed             int                 `json:"revealed"`
	HasMore              bool                `json:"hasMore"`
	Loading              bool                `json:"loading"`
	AvailableDepartments []string            `json:"availableDepartments"`
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stateLocked()
}

func (v *View) stateLocked() State {
	st := State{
		Mode:                 v.mode,
		Filters:              v.engine.Filters(),
		TotalItems:           len(v.filtered),
		Page:                 v.pager.Page(),
		TotalPages:           v.pager.TotalPages(),
		PerPage:              v.pager.PerPage(),
		VisiblePages:         v.pager.VisiblePages(),
		Revealed:             v.revealer.Revealed(),
		HasMore:              v.revealer.HasMore(),
		Loading:              v.revealer.Loading(),
		AvailableDepartments: search.AvailableDepartments(v.employees),
	}

	switch v.mode {
	case ModeInfinite:
		st.Items = feed.Window(v.filtered, v.revealer)
	default:
		st.Items = paging.Window(v.filtered, v.pager)
	}
	return st
}

// SetFilters replaces the whole filter state and re-derives the view.
func (v *View) SetFilters(f search.Filters) State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.engine.UpdateQuery(f.Query)
	v.engine.UpdateDepartments(f.Departments)
	v.engine.UpdateRatingRange(f.MinRating, f.MaxRating)
	v.rederiveLocked()
	return v.stateLocked()
}

// ClearFilters restores the defaults and re-derives the view.
func (v *View) ClearFilters() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.engine.Clear()
	v.rederiveLocked()
	return v.stateLocked()
}

func (v *View) SetPage(page int) State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pager.SetPage(page)
	return v.stateLocked()
}

func (v *View) SetPerPage(n int) State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pager.SetPerPage(n)
	return v.stateLocked()
}

// LoadMore starts one revealer growth step. The returned state still
// shows the pre-growth window; the step lands after the artificial
// delay.
func (v *View) LoadMore() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.revealer.LoadMore()
	return v.stateLocked()
}

// SetMode switches between paged and infinite display. Switching resets
// the revealer so the new mode never shows a stale over-large window.
func (v *View) SetMode(m Mode) State {
	v.mu.Lock()
	defer v.mu.Unlock()
	if m != v.mode {
		v.mode = m
		v.revealer.Reset()
	}
	return v.stateLocked()
}

// RefreshData replaces the directory snapshot (after an upstream refresh
// or a local create) and re-derives the view under the current filters.
func (v *View) RefreshData(employees []employee.Employee) State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.employees = employees
	v.rederiveLocked()
	return v.stateLocked()
}

func (v *View) rederiveLocked() {
	v.filtered = v.engine.Apply(v.employees)
	v.pager.SetTotal(len(v.filtered))
	v.pager.First()
	v.revealer.Resize(len(v.filtered))
}
