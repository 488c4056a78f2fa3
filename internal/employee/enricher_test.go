package employee_test

import (
	"math/rand"
	"strings"
	"testing"

	"hrboard/internal/employee"

	"github.com/stretchr/testify/assert"
)

func seededEnricher() *employee.Enricher {
	return employee.NewEnricher(rand.New(rand.NewSource(1)))
}

func rawUser(id int) employee.User {
	return employee.User{
		ID:        id,
		FirstName: "Terry",
		LastName:  "Medhurst",
		Email:     "terry.medhurst@x.dummyjson.com",
		Age:       50,
	}
}

func TestEnricher_Enrich(t *testing.T) {
	e := seededEnricher()

	// Structural invariants must hold for any draw, so run a batch.
	for i := 0; i < 50; i++ {
		emp := e.Enrich(rawUser(i + 1))

		assert.Equal(t, i+1, emp.ID)
		assert.Contains(t, employee.Departments(), emp.Department)
		assert.GreaterOrEqual(t, emp.PerformanceRating, 1)
		assert.LessOrEqual(t, emp.PerformanceRating, 5)

		assert.NotEmpty(t, emp.Bio)
		assert.Contains(t, emp.Bio, emp.Department)
		assert.Contains(t, emp.Bio, "Terry")

		assert.GreaterOrEqual(t, len(emp.Projects), 1)
		assert.LessOrEqual(t, len(emp.Projects), 4)
		for _, p := range emp.Projects {
			assert.True(t, strings.HasPrefix(p.ID, "proj-"))
			assert.NotEmpty(t, p.Name)
			assert.NotEmpty(t, p.Role)
			assert.Contains(t, []employee.ProjectStatus{
				employee.ProjectActive, employee.ProjectCompleted, employee.ProjectOnHold,
			}, p.Status)
			assert.NotEmpty(t, p.StartDate)
		}

		assert.GreaterOrEqual(t, len(emp.Feedback), 1)
		assert.LessOrEqual(t, len(emp.Feedback), 3)
		for _, f := range emp.Feedback {
			assert.True(t, strings.HasPrefix(f.ID, "feedback-"))
			assert.GreaterOrEqual(t, f.Rating, 1)
			assert.LessOrEqual(t, f.Rating, 5)
			assert.NotEmpty(t, f.From)
			assert.NotEmpty(t, f.Date)
		}

		assert.Len(t, emp.PerformanceHistory, 4)
		for _, rec := range emp.PerformanceHistory {
			assert.NotEmpty(t, rec.Quarter)
			assert.GreaterOrEqual(t, rec.Rating, 1)
			assert.LessOrEqual(t, rec.Rating, 5)
			assert.GreaterOrEqual(t, len(rec.Goals), 1)
			assert.LessOrEqual(t, len(rec.Goals), 3)
			assert.GreaterOrEqual(t, len(rec.Achievements), 1)
			assert.LessOrEqual(t, len(rec.Achievements), 3)
		}
	}
}

func TestEnricher_EnrichWithDepartment(t *testing.T) {
	e := seededEnricher()

	t.Run("explicit department wins", func(t *testing.T) {
		emp := e.EnrichWithDepartment(rawUser(1), "Legal")
		assert.Equal(t, "Legal", emp.Department)
		assert.Contains(t, emp.Bio, "Legal")
	})

	t.Run("blank department falls back to a generated one", func(t *testing.T) {
		emp := e.EnrichWithDepartment(rawUser(2), "  ")
		assert.Contains(t, employee.Departments(), emp.Department)
	})
}

func TestEnricher_NewFeedback(t *testing.T) {
	e := seededEnricher()

	f := e.NewFeedback("Jane Doe", "Solid quarter.", 4)
	assert.True(t, strings.HasPrefix(f.ID, "feedback-"))
	assert.Equal(t, "Jane Doe", f.From)
	assert.Equal(t, "Solid quarter.", f.Comment)
	assert.Equal(t, 4, f.Rating)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, f.Date)
}

func TestDepartments(t *testing.T) {
	depts := employee.Departments()
	assert.Len(t, depts, 10)
	assert.Contains(t, depts, "Engineering")
	assert.Contains(t, depts, "Legal")

	// The accessor hands out a copy.
	depts[0] = "mutated"
	assert.Equal(t, "Engineering", employee.Departments()[0])
}
