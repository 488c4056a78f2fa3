package analytics

import (
	"net/http"

	"hrboard/internal/bookmark"
	"hrboard/internal/employee"
	"hrboard/internal/shared/apperror"
	"hrboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	directory employee.Service
	bookmarks *bookmark.Service
	logger    *zap.Logger
}

func NewHandler(directory employee.Service, bookmarks *bookmark.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("analytics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.handler")
	}
	return &Handler{directory: directory, bookmarks: bookmarks, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("analytics request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetDepartmentStats(c *gin.Context) {
	snapshot, err := h.directory.Snapshot(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, DepartmentStats(snapshot), nil)
}

func (h *Handler) GetBookmarkTrends(c *gin.Context) {
	response.Success(c, http.StatusOK, BookmarkTrends(h.bookmarks.Count()), nil)
}
