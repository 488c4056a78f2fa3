package analytics_test

import (
	"testing"

	"hrboard/internal/analytics"
	"hrboard/internal/employee"

	"github.com/stretchr/testify/assert"
)

func rated(id int, dept string, rating int) employee.Employee {
	return employee.Employee{
		User:              employee.User{ID: id},
		Department:        dept,
		PerformanceRating: rating,
	}
}

func TestDepartmentStats(t *testing.T) {
	t.Run("exact mean and headcount per group", func(t *testing.T) {
		got := analytics.DepartmentStats([]employee.Employee{
			rated(1, "Engineering", 3),
			rated(2, "Engineering", 5),
			rated(3, "Sales", 2),
		})

		assert.Equal(t, []analytics.DepartmentStat{
			{Department: "Engineering", AverageRating: 4.0, EmployeeCount: 2},
			{Department: "Sales", AverageRating: 2.0, EmployeeCount: 1},
		}, got)
	})

	t.Run("non-integer mean keeps full precision", func(t *testing.T) {
		got := analytics.DepartmentStats([]employee.Employee{
			rated(1, "Legal", 4),
			rated(2, "Legal", 5),
		})

		assert.Len(t, got, 1)
		assert.InDelta(t, 4.5, got[0].AverageRating, 1e-9)
	})

	t.Run("sorted by department name", func(t *testing.T) {
		got := analytics.DepartmentStats([]employee.Employee{
			rated(1, "Sales", 3),
			rated(2, "Design", 3),
			rated(3, "Marketing", 3),
		})

		assert.Equal(t, "Design", got[0].Department)
		assert.Equal(t, "Marketing", got[1].Department)
		assert.Equal(t, "Sales", got[2].Department)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, analytics.DepartmentStats(nil))
	})
}

func TestBookmarkTrends(t *testing.T) {
	got := analytics.BookmarkTrends(7)

	assert.Len(t, got, 6)
	assert.Equal(t, analytics.TrendPoint{Month: "Jan", Count: 2}, got[0])
	assert.Equal(t, analytics.TrendPoint{Month: "Jun", Count: 7}, got[5])

	// The live point tracks the current count.
	assert.Equal(t, 0, analytics.BookmarkTrends(0)[5].Count)
}
