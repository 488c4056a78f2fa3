package bookmark

import (
	"net/http"
	"strconv"

	"hrboard/internal/employee"
	employeeerrors "hrboard/internal/employee/errors"
	"hrboard/internal/shared/apperror"
	"hrboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	bookmarks *Service
	directory employee.Service
	logger    *zap.Logger
}

func NewHandler(bookmarks *Service, directory employee.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("bookmark.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bookmark.handler")
	}
	return &Handler{bookmarks: bookmarks, directory: directory, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("bookmark request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetAll renders the bookmarked employees in insertion order. Bookmarks
// whose employee no longer appears in the directory are skipped, not
// removed.
func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	snapshot, err := h.directory.Snapshot(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	byID := make(map[int]employee.Employee, len(snapshot))
	for _, e := range snapshot {
		byID[e.ID] = e
	}

	ids := h.bookmarks.List()
	out := make([]employee.Employee, 0, len(ids))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}

	response.Success(c, http.StatusOK, out, nil)
}

func (h *Handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return
	}

	// Only known employees can be bookmarked.
	if _, err := h.directory.GetByID(ctx, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.bookmarks.Add(ctx, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookmarked": true, "id": id}, nil)
}

func (h *Handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return
	}

	if err := h.bookmarks.Remove(ctx, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookmarked": false, "id": id}, nil)
}
