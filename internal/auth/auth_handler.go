package auth

import (
	"net/http"

	"hrboard/internal/shared/apperror"
	"hrboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionCookieMaxAge = 86400 // seconds, mirrors the session TTL

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	token, session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("login rejected", zap.String("email", req.Email))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	c.SetCookie(SessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
	response.Success(c, http.StatusOK, toResponse(session), nil)
}

func (h *Handler) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	sessionID := c.GetString("session_id")

	session, err := h.service.Me(c.Request.Context(), sessionID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, toResponse(session), nil)
}
