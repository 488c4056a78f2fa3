package employee

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	employeeerrors "hrboard/internal/employee/errors"
	"hrboard/internal/search"
	"hrboard/internal/shared/apperror"
	"hrboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetAll serves the stateless listing: filters, sort, and page window all
// come from query params and apply to the in-memory directory.
func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	snapshot, err := h.service.Snapshot(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filters := search.Defaults()
	filters.Query = strings.TrimSpace(c.Query("q"))
	if raw := strings.TrimSpace(c.Query("departments")); raw != "" {
		filters.Departments = strings.Split(raw, ",")
	}
	if v, err := strconv.Atoi(c.DefaultQuery("min_rating", "0")); err == nil {
		filters.MinRating = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("max_rating", "5")); err == nil {
		filters.MaxRating = v
	}

	resp := search.Apply(snapshot, filters)

	sortBy := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "name")))
	sortDir := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "asc")))
	if sortDir != "desc" {
		sortDir = "asc"
	}
	sort.SliceStable(resp, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "email":
			less = strings.ToLower(resp[i].Email) < strings.ToLower(resp[j].Email)
		case "rating":
			less = resp[i].PerformanceRating < resp[j].PerformanceRating
		case "id":
			less = resp[i].ID < resp[j].ID
		default:
			less = strings.ToLower(resp[i].FirstName+" "+resp[i].LastName) <
				strings.ToLower(resp[j].FirstName+" "+resp[j].LastName)
		}
		if sortDir == "desc" {
			return !less
		}
		return less
	})

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))
	if pageSize < 1 {
		pageSize = 12
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

// GetDepartments serves the distinct, sorted department list from the
// unfiltered directory.
func (h *Handler) GetDepartments(c *gin.Context) {
	snapshot, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, search.AvailableDepartments(snapshot), nil)
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return
	}
	h.logger.Debug("http get employee by id", zap.Int("employee_id", id))

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) AddFeedback(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return
	}

	var req AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http add feedback validation failed", zap.Error(err))
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.AddFeedback(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Refresh forces a reload from upstream, dropping the cached directory.
func (h *Handler) Refresh(c *gin.Context) {
	resp, err := h.service.Refresh(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": len(resp)}, nil)
}
