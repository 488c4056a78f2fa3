package dashboard

import (
	"net/http"

	"hrboard/internal/employee"
	"hrboard/internal/search"
	"hrboard/internal/shared/apperror"
	"hrboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	registry  *Registry
	directory employee.Service
	logger    *zap.Logger
}

func NewHandler(registry *Registry, directory employee.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{registry: registry, directory: directory, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("dashboard request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// view resolves the caller's session view, loading the directory on first
// touch.
func (h *Handler) view(c *gin.Context) (*View, bool) {
	sessionID := c.GetString("session_id")

	snapshot, err := h.directory.Snapshot(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return nil, false
	}

	return h.registry.GetOrCreate(sessionID, snapshot), true
}

func (h *Handler) GetState(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, v.State(), nil)
}

func (h *Handler) UpdateFilters(c *gin.Context) {
	var req UpdateFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	v, ok := h.view(c)
	if !ok {
		return
	}

	st := v.SetFilters(search.Filters{
		Query:       req.Query,
		Departments: req.Departments,
		MinRating:   req.MinRating,
		MaxRating:   req.MaxRating,
	})
	response.Success(c, http.StatusOK, st, nil)
}

func (h *Handler) ClearFilters(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, v.ClearFilters(), nil)
}

func (h *Handler) SetPage(c *gin.Context) {
	var req SetPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	v, ok := h.view(c)
	if !ok {
		return
	}
	// Out-of-range pages are a silent no-op; the state echoes the page
	// that actually holds.
	response.Success(c, http.StatusOK, v.SetPage(req.Page), nil)
}

func (h *Handler) SetPerPage(c *gin.Context) {
	var req SetPerPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	v, ok := h.view(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, v.SetPerPage(req.PageSize), nil)
}

func (h *Handler) LoadMore(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	// Responds immediately with loading=true; the growth step lands after
	// the simulated fetch delay.
	response.Success(c, http.StatusOK, v.LoadMore(), nil)
}

func (h *Handler) SetMode(c *gin.Context) {
	var req SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	v, ok := h.view(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, v.SetMode(Mode(req.Mode)), nil)
}

// Refresh reloads the directory from upstream and re-derives this
// session's view.
func (h *Handler) Refresh(c *gin.Context) {
	sessionID := c.GetString("session_id")

	snapshot, err := h.directory.Refresh(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	v := h.registry.GetOrCreate(sessionID, snapshot)
	response.Success(c, http.StatusOK, v.RefreshData(snapshot), nil)
}
