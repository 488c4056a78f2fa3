package bookmark_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrboard/internal/bookmark"
	"hrboard/internal/employee"
	employeeerrors "hrboard/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDirectory struct {
	employees []employee.Employee
}

func (f *fakeDirectory) Snapshot(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeDirectory) Refresh(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeDirectory) GetByID(_ context.Context, id int) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employeeerrors.ErrEmployeeNotFound
}

func (f *fakeDirectory) Create(_ context.Context, _ employee.CreateEmployeeRequest) (employee.Employee, error) {
	panic("not used")
}

func (f *fakeDirectory) AddFeedback(_ context.Context, _ int, _ employee.AddFeedbackRequest) (employee.Employee, error) {
	panic("not used")
}

func knownEmployees() []employee.Employee {
	return []employee.Employee{
		{User: employee.User{ID: 1, FirstName: "Alice"}, Department: "Engineering"},
		{User: employee.User{ID: 2, FirstName: "Bob"}, Department: "Sales"},
		{User: employee.User{ID: 3, FirstName: "Carla"}, Department: "Legal"},
	}
}

func bookmarkRouter(svc *bookmark.Service, dir employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := bookmark.NewHandler(svc, dir)
	grp := r.Group("/bookmarks")
	grp.GET("", h.GetAll)
	grp.PUT("/:id", h.Add)
	grp.DELETE("/:id", h.Remove)
	return r
}

func do(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestBookmarkHandler_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("known employee", func(t *testing.T) {
		svc := bookmark.NewService(ctx, &memStore{})
		r := bookmarkRouter(svc, &fakeDirectory{employees: knownEmployees()})

		rec := do(r, http.MethodPut, "/bookmarks/2")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, svc.IsBookmarked(2))
	})

	t.Run("unknown employee is rejected", func(t *testing.T) {
		svc := bookmark.NewService(ctx, &memStore{})
		r := bookmarkRouter(svc, &fakeDirectory{employees: knownEmployees()})

		rec := do(r, http.MethodPut, "/bookmarks/42")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, svc.IsBookmarked(42))
	})

	t.Run("non-numeric id", func(t *testing.T) {
		svc := bookmark.NewService(ctx, &memStore{})
		r := bookmarkRouter(svc, &fakeDirectory{employees: knownEmployees()})

		rec := do(r, http.MethodPut, "/bookmarks/xyz")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookmarkHandler_Remove(t *testing.T) {
	ctx := context.Background()
	svc := bookmark.NewService(ctx, &memStore{loaded: []int{2, 3}})
	r := bookmarkRouter(svc, &fakeDirectory{employees: knownEmployees()})

	rec := do(r, http.MethodDelete, "/bookmarks/2")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{3}, svc.List())

	// Removing an absent bookmark still succeeds.
	rec = do(r, http.MethodDelete, "/bookmarks/2")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookmarkHandler_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("insertion order, joined against the directory", func(t *testing.T) {
		svc := bookmark.NewService(ctx, &memStore{loaded: []int{3, 1}})
		r := bookmarkRouter(svc, &fakeDirectory{employees: knownEmployees()})

		rec := do(r, http.MethodGet, "/bookmarks")
		assert.Equal(t, http.StatusOK, rec.Code)

		var env struct {
			Data []employee.Employee `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		if assert.Len(t, env.Data, 2) {
			assert.Equal(t, 3, env.Data[0].ID)
			assert.Equal(t, 1, env.Data[1].ID)
		}
	})

	t.Run("bookmarks missing from the directory are skipped", func(t *testing.T) {
		svc := bookmark.NewService(ctx, &memStore{loaded: []int{1, 99}})
		r := bookmarkRouter(svc, &fakeDirectory{employees: knownEmployees()})

		rec := do(r, http.MethodGet, "/bookmarks")

		var env struct {
			Data []employee.Employee `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Len(t, env.Data, 1)
		assert.Equal(t, []int{1, 99}, svc.List(), "the stale id stays in the set")
	})
}
