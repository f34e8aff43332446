package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AdminSessionKey is where the logged-in admin username lives in the session.
const AdminSessionKey = "admin_user"

// RequireAdmin gates a route on an authenticated admin session. Requests
// without one are redirected to the login entry point instead of erroring.
func RequireAdmin(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(AdminSessionKey) == nil {
		c.Redirect(http.StatusFound, "/admin")
		c.Abort()
		return
	}
	c.Next()
}
