package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys. The user ID key doubles as the logged-in marker: present
// means authenticated.
const (
	SessionKeyUserID    = "auth_user_id"
	SessionKeyCSRFToken = "csrf_token"
)

// CurrentUserID returns the logged-in user's ID from the session, or ""
// when nobody is logged in.
func CurrentUserID(c *gin.Context) string {
	session := sessions.Default(c)
	v := session.Get(SessionKeyUserID)
	if v == nil {
		return ""
	}
	userID, ok := v.(string)
	if !ok {
		return ""
	}
	return userID
}

// RequireUser rejects unauthenticated requests with 403. Used on endpoints
// where a login redirect makes no sense, such as form posts.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUserID(c) == "" {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"Status":  http.StatusForbidden,
				"Message": "login required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireUserOrLogin redirects unauthenticated browsers to the login page,
// carrying the original URL in the next parameter so login can return there.
func RequireUserOrLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUserID(c) == "" {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/user/login/?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}
