package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	csrfFormField = "csrf_token"

	// Spill-to-disk threshold for multipart parsing; the body size cap is
	// enforced separately by LimitRequestBody.
	multipartMemory = 32 << 20
)

// CSRFToken returns the session's CSRF token, generating and storing one on
// first use. Call it when rendering any form that posts back.
func CSRFToken(c *gin.Context) string {
	session := sessions.Default(c)
	if v := session.Get(SessionKeyCSRFToken); v != nil {
		if token, ok := v.(string); ok && token != "" {
			return token
		}
	}

	token := generateCSRFToken()
	session.Set(SessionKeyCSRFToken, token)
	// Save failure leaves the token valid for this response only; the next
	// form render issues a fresh one.
	_ = session.Save()
	return token
}

// CSRF validates the csrf_token form field on mutating requests against the
// token stored in the session. GET and HEAD pass through untouched.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		// Parse the form explicitly: a body over the configured cap fails
		// here, and it must answer 413 rather than read as a missing token.
		if err := parseRequestForm(c); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				c.HTML(http.StatusRequestEntityTooLarge, "error.html", gin.H{
					"Status":  http.StatusRequestEntityTooLarge,
					"Message": "request entity too large",
				})
				c.Abort()
				return
			}
			// A malformed body carries no token; the compare below rejects it.
		}

		session := sessions.Default(c)
		stored, _ := session.Get(SessionKeyCSRFToken).(string)
		submitted := c.PostForm(csrfFormField)

		if stored == "" || submitted == "" ||
			subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) != 1 {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"Status":  http.StatusForbidden,
				"Message": "invalid CSRF token",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func parseRequestForm(c *gin.Context) error {
	if c.ContentType() == "multipart/form-data" {
		return c.Request.ParseMultipartForm(multipartMemory)
	}
	return c.Request.ParseForm()
}

func generateCSRFToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}
