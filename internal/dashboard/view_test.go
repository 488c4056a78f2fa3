package dashboard_test

import (
	"testing"
	"time"

	"hrboard/internal/dashboard"
	"hrboard/internal/employee"
	"hrboard/internal/feed"
	"hrboard/internal/search"

	"github.com/stretchr/testify/assert"
)

type manualScheduler struct {
	pending []func()
}

func (s *manualScheduler) schedule(_ time.Duration, f func()) {
	s.pending = append(s.pending, f)
}

func (s *manualScheduler) fire(t *testing.T) {
	t.Helper()
	if len(s.pending) == 0 {
		t.Fatal("no pending load to fire")
	}
	f := s.pending[0]
	s.pending = s.pending[1:]
	f()
}

func directoryOf(n int) []employee.Employee {
	out := make([]employee.Employee, 0, n)
	depts := []string{"Engineering", "Sales", "Legal"}
	for i := 1; i <= n; i++ {
		out = append(out, employee.Employee{
			User: employee.User{
				ID:        i,
				FirstName: "First",
				LastName:  "Last",
				Email:     "user@corp.com",
			},
			Department:        depts[(i-1)%len(depts)],
			PerformanceRating: (i-1)%5 + 1,
		})
	}
	return out
}

func newTestView(n int) (*dashboard.View, *manualScheduler) {
	s := &manualScheduler{}
	return dashboard.NewView(directoryOf(n), feed.WithScheduler(s.schedule)), s
}

func TestView_InitialState(t *testing.T) {
	v, _ := newTestView(25)
	st := v.State()

	assert.Equal(t, dashboard.ModePaged, st.Mode)
	assert.Equal(t, search.Defaults(), st.Filters)
	assert.Equal(t, 25, st.TotalItems)
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, 3, st.TotalPages)
	assert.Equal(t, 12, st.PerPage)
	assert.Len(t, st.Items, 12)
	assert.Equal(t, []string{"Engineering", "Legal", "Sales"}, st.AvailableDepartments)
}

func TestView_SetFilters(t *testing.T) {
	t.Run("narrows the collection and returns to page one", func(t *testing.T) {
		v, _ := newTestView(25)
		v.SetPage(3)

		f := search.Defaults()
		f.Departments = []string{"Legal"}
		st := v.SetFilters(f)

		assert.Equal(t, 1, st.Page, "a filter change always lands on the first page")
		assert.Equal(t, 8, st.TotalItems)
		for _, e := range st.Items {
			assert.Equal(t, "Legal", e.Department)
		}
	})

	t.Run("resets revealer progress when the collection shrinks", func(t *testing.T) {
		v, s := newTestView(40)
		v.SetMode(dashboard.ModeInfinite)
		v.LoadMore()
		s.fire(t)
		assert.Equal(t, 24, v.State().Revealed)

		f := search.Defaults()
		f.Departments = []string{"Sales"} // 13 of 40
		st := v.SetFilters(f)

		assert.Equal(t, 12, st.Revealed)
		assert.Equal(t, 13, st.TotalItems)
	})

	t.Run("departments list stays unfiltered", func(t *testing.T) {
		v, _ := newTestView(25)

		f := search.Defaults()
		f.Departments = []string{"Legal"}
		st := v.SetFilters(f)

		assert.Equal(t, []string{"Engineering", "Legal", "Sales"}, st.AvailableDepartments)
	})
}

func TestView_ClearFilters(t *testing.T) {
	v, _ := newTestView(25)

	f := search.Defaults()
	f.Query = "zzz-no-match"
	st := v.SetFilters(f)
	assert.Equal(t, 0, st.TotalItems)
	assert.Equal(t, 1, st.TotalPages, "an empty result still renders one page")

	st = v.ClearFilters()
	assert.Equal(t, search.Defaults(), st.Filters)
	assert.Equal(t, 25, st.TotalItems)
}

func TestView_Paging(t *testing.T) {
	v, _ := newTestView(25)

	t.Run("valid page", func(t *testing.T) {
		st := v.SetPage(3)
		assert.Equal(t, 3, st.Page)
		assert.Len(t, st.Items, 1)
	})

	t.Run("out-of-range page keeps the current one", func(t *testing.T) {
		st := v.SetPage(99)
		assert.Equal(t, 3, st.Page)
	})

	t.Run("page size change returns to page one", func(t *testing.T) {
		st := v.SetPerPage(20)
		assert.Equal(t, 1, st.Page)
		assert.Equal(t, 20, st.PerPage)
		assert.Equal(t, 2, st.TotalPages)
		assert.Len(t, st.Items, 20)
	})
}

func TestView_InfiniteMode(t *testing.T) {
	v, s := newTestView(30)

	st := v.SetMode(dashboard.ModeInfinite)
	assert.Equal(t, dashboard.ModeInfinite, st.Mode)
	assert.Len(t, st.Items, 12)
	assert.True(t, st.HasMore)

	st = v.LoadMore()
	assert.True(t, st.Loading, "the window grows only after the delay")
	assert.Len(t, st.Items, 12)

	s.fire(t)
	st = v.State()
	assert.False(t, st.Loading)
	assert.Len(t, st.Items, 24)
	assert.Equal(t, 24, st.Revealed)

	// Switching back and forth resets progress.
	v.SetMode(dashboard.ModePaged)
	st = v.SetMode(dashboard.ModeInfinite)
	assert.Equal(t, 12, st.Revealed)
}

func TestView_SetMode_SameModeIsNoop(t *testing.T) {
	v, s := newTestView(30)
	v.SetMode(dashboard.ModeInfinite)
	v.LoadMore()
	s.fire(t)

	st := v.SetMode(dashboard.ModeInfinite)
	assert.Equal(t, 24, st.Revealed, "re-selecting the active mode must not reset progress")
}

func TestView_RefreshData(t *testing.T) {
	v, _ := newTestView(25)

	f := search.Defaults()
	f.Departments = []string{"Legal"}
	v.SetFilters(f)

	// A bigger directory arrives; the active filter still applies.
	st := v.RefreshData(directoryOf(40))
	assert.Equal(t, 13, st.TotalItems)
	assert.Equal(t, 1, st.Page)
	for _, e := range st.Items {
		assert.Equal(t, "Legal", e.Department)
	}
}
