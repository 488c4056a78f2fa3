package search

import employee "hrboard/internal/employee/model"

// Engine owns the current filter state for one view. It is a single-owner
// container: the owning view serializes access, so the engine itself does
// not lock.
type Engine struct {
	filters Filters
}

func NewEngine() *Engine {
	return &Engine{filters: Defaults()}
}

// Filters returns the current state.
func (e *Engine) Filters() Filters {
	return e.filters
}

// UpdateQuery replaces the text query.
func (e *Engine) UpdateQuery(query string) {
	e.filters.Query = query
}

// UpdateDepartments replaces the department allow-list. An empty list
// means no restriction, not "match nothing".
func (e *Engine) UpdateDepartments(departments []string) {
	e.filters.Departments = departments
}

// UpdateRatingRange replaces the inclusive bounds. Ordering is not
// validated; see Filters.
func (e *Engine) UpdateRatingRange(min, max int) {
	e.filters.MinRating = min
	e.filters.MaxRating = max
}

// Clear restores the defaults.
func (e *Engine) Clear() {
	e.filters = Defaults()
}

// Apply filters the given collection with the current state.
func (e *Engine) Apply(employees []employee.Employee) []employee.Employee {
	return Apply(employees, e.filters)
}
