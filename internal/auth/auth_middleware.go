package auth

import (
	"net/http"
	"strings"

	"hrboard/internal/shared/apperror"
	"hrboard/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie the login handler writes and the gate
// consults.
const SessionCookie = "hr_session"

// Gate admits requests carrying a live session, from the Authorization
// header or the session cookie. It is an advisory gate for a single-user
// demo dashboard: it keeps unauthenticated browsers out of protected
// views and nothing more; do not treat it as a security boundary.
func Gate(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			token = ""
		}

		if token == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				token = cookie
			}
		}

		if token == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Sign in to continue", nil)
			c.Abort()
			return
		}

		session, err := svc.Resolve(c.Request.Context(), token)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Set("session_id", session.ID)
		c.Set("session_role", session.Role)
		c.Next()
	}
}
