// Package common provides the HTML rendering helpers shared by all page
// handlers: template data enrichment, flash messages, and the single place
// where application errors turn into HTTP error pages.
package common

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"zenmai/internal/interfaces/http/middleware"
	"zenmai/internal/shared/errors"
	"zenmai/internal/shared/logger"
)

// Flash categories rendered with distinct styling.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
)

type FlashMessage struct {
	Category string
	Message  string
}

// Flash queues a one-shot message shown on the next rendered page.
func Flash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	if err := session.Save(); err != nil {
		logger.Warn("failed to save flash message", "error", err)
	}
}

func takeFlashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)

	var messages []FlashMessage
	for _, category := range []string{FlashSuccess, FlashWarning} {
		for _, f := range session.Flashes(category) {
			if msg, ok := f.(string); ok {
				messages = append(messages, FlashMessage{Category: category, Message: msg})
			}
		}
	}

	if len(messages) > 0 {
		if err := session.Save(); err != nil {
			logger.Warn("failed to clear flash messages", "error", err)
		}
	}
	return messages
}

// Render writes an HTML page, injecting the template data every page needs:
// the CSRF token, the logged-in user ID, and pending flash messages.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CSRFToken"] = middleware.CSRFToken(c)
	data["LoginUserID"] = middleware.CurrentUserID(c)
	data["Flashes"] = takeFlashes(c)
	c.HTML(status, name, data)
}

// RenderError translates an application error into an HTTP error page. This
// is the single handler-boundary translator: not-found and forbidden map to
// their status codes, everything unexpected becomes a detail-free 500.
func RenderError(c *gin.Context, log logger.Interface, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Type {
		case errors.ErrorTypeNotFound:
			status = http.StatusNotFound
			message = appErr.Message
		case errors.ErrorTypeForbidden, errors.ErrorTypeUnauthorized:
			status = http.StatusForbidden
			message = appErr.Message
		case errors.ErrorTypeValidation, errors.ErrorTypeBadRequest:
			status = http.StatusBadRequest
			message = appErr.Message
		}
	}

	if status == http.StatusInternalServerError {
		log.Errorw("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err)
	}

	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
	c.Abort()
}
