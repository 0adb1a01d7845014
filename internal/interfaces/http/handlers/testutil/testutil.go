// Package testutil provides helpers for handler and middleware tests:
// a router with sessions and templates wired the same way the server
// builds them, plus session priming and request helpers.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"zenmai/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewRouter returns a gin engine with the session middleware and the real
// HTML templates loaded, ready for route registration.
func NewRouter() *gin.Engine {
	engine := gin.New()

	store := cookie.NewStore([]byte("test-session-secret"))
	engine.Use(sessions.Sessions("test_session", store))

	engine.LoadHTMLGlob(filepath.Join(templatesDir(), "*.html"))

	return engine
}

// templatesDir walks up from the working directory until it finds
// web/templates. Tests run from their package directory, so the repo root
// is a few levels up.
func templatesDir() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	for {
		candidate := filepath.Join(dir, "web", "templates")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("web/templates not found above working directory")
		}
		dir = parent
	}
}

// PrimeSession stores the given values in a fresh session and returns the
// resulting cookies, for attaching to subsequent requests. Call at most once
// per engine.
func PrimeSession(engine *gin.Engine, values map[string]string) []*http.Cookie {
	engine.GET("/__prime", func(c *gin.Context) {
		session := sessions.Default(c)
		for k, v := range values {
			session.Set(k, v)
		}
		_ = session.Save()
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/__prime", nil)
	engine.ServeHTTP(w, req)
	return w.Result().Cookies()
}

// Get performs a GET request with optional cookies.
func Get(engine *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// PostForm performs a urlencoded POST with optional cookies.
func PostForm(engine *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	return PostBody(engine, path, strings.NewReader(form.Encode()),
		"application/x-www-form-urlencoded", cookies)
}

// PostBody performs a POST with an arbitrary body and content type.
func PostBody(engine *gin.Engine, path string, body io.Reader, contentType string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// NewMockLogger returns a no-op logger.Interface for tests.
func NewMockLogger() logger.Interface {
	return &mockLogger{}
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
