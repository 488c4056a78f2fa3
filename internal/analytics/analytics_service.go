package analytics

import (
	"sort"

	"hrboard/internal/employee"
)

type DepartmentStat struct {
	Department    string  `json:"department"`
	AverageRating float64 `json:"averageRating"`
	EmployeeCount int     `json:"employeeCount"`
}

type TrendPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DepartmentStats groups employees by department and computes the exact
// mean rating and headcount per group. Output is sorted by department
// name so results are reproducible across runs.
func DepartmentStats(employees []employee.Employee) []DepartmentStat {
	type acc struct {
		total int
		count int
	}

	byDept := make(map[string]*acc)
	for _, e := range employees {
		a, ok := byDept[e.Department]
		if !ok {
			a = &acc{}
			byDept[e.Department] = a
		}
		a.total += e.PerformanceRating
		a.count++
	}

	out := make([]DepartmentStat, 0, len(byDept))
	for dept, a := range byDept {
		out = append(out, DepartmentStat{
			Department:    dept,
			AverageRating: float64(a.total) / float64(a.count),
			EmployeeCount: a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Department < out[j].Department
	})
	return out
}

// trendHistory is the fixed demo series the analytics panel charts; only
// the final point is live.
var trendHistory = []TrendPoint{
	{Month: "Jan", Count: 2},
	{Month: "Feb", Count: 5},
	{Month: "Mar", Count: 8},
	{Month: "Apr", Count: 12},
	{Month: "May", Count: 15},
}

// BookmarkTrends appends the current bookmark count to the fixed history.
func BookmarkTrends(current int) []TrendPoint {
	out := make([]TrendPoint, 0, len(trendHistory)+1)
	out = append(out, trendHistory...)
	out = append(out, TrendPoint{Month: "Jun", Count: current})
	return out
}
