package middleware

import (
	"net/http"

	"inkwell/utils"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session"

// RequireLogin gates protected pages. Anonymous requests are redirected to
// the login page; authenticated ones get the user id placed in the context.
func RequireLogin(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			// Expired or tampered token: drop the cookie and start over.
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated identity set by RequireLogin.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
