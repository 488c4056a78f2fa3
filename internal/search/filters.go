package search

import (
	"sort"
	"strings"

	employee "hrboard/internal/employee/model"
)

const (
	DefaultMinRating = 0
	DefaultMaxRating = 5
)

// Filters holds the active search predicates. The zero value of
// Departments means "no restriction". Callers own the min <= max
// ordering: a range with min > max admits nothing, which is the inherited
// behavior and is deliberately not corrected here.
type Filters struct {
	Query       string   `json:"query"`
	Departments []string `json:"departments"`
	MinRating   int      `json:"minRating"`
	MaxRating   int      `json:"maxRating"`
}

// Defaults is the cleared filter state: empty query, all departments,
// full rating range.
func Defaults() Filters {
	return Filters{
		Query:       "",
		Departments: nil,
		MinRating:   DefaultMinRating,
		MaxRating:   DefaultMaxRating,
	}
}

// Match reports whether the employee passes every active predicate. The
// text query is a case-insensitive substring test against first name,
// last name, email, and department; any hit counts.
func (f Filters) Match(e employee.Employee) bool {
	if q := strings.ToLower(f.Query); q != "" {
		hit := strings.Contains(strings.ToLower(e.FirstName), q) ||
			strings.Contains(strings.ToLower(e.LastName), q) ||
			strings.Contains(strings.ToLower(e.Email), q) ||
			strings.Contains(strings.ToLower(e.Department), q)
		if !hit {
			return false
		}
	}

	if len(f.Departments) > 0 {
		found := false
		for _, d := range f.Departments {
			if d == e.Department {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return e.PerformanceRating >= f.MinRating && e.PerformanceRating <= f.MaxRating
}

// Apply returns the subset of employees passing the filters, preserving
// input order.
func Apply(employees []employee.Employee, f Filters) []employee.Employee {
	out := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// AvailableDepartments lists every distinct department in the unfiltered
// collection, sorted. Active filters never narrow this.
func AvailableDepartments(employees []employee.Employee) []string {
	seen := make(map[string]struct{}, len(employees))
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		out = append(out, e.Department)
	}
	sort.Strings(out)
	return out
}
