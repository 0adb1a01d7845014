package middleware_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenmai/internal/interfaces/http/handlers/testutil"
	"zenmai/internal/interfaces/http/middleware"
)

func newCSRFRouter() *gin.Engine {
	engine := testutil.NewRouter()
	engine.Use(middleware.CSRF())
	engine.GET("/page", func(c *gin.Context) {
		c.String(http.StatusOK, "token=%s", middleware.CSRFToken(c))
	})
	engine.POST("/submit", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return engine
}

func TestCSRF_GetPassesWithoutToken(t *testing.T) {
	engine := newCSRFRouter()

	w := testutil.Get(engine, "/page", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRF_PostWithoutTokenRejected(t *testing.T) {
	engine := newCSRFRouter()

	w := testutil.PostForm(engine, "/submit", url.Values{}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRF_PostWithWrongTokenRejected(t *testing.T) {
	engine := newCSRFRouter()
	cookies := testutil.PrimeSession(engine, map[string]string{
		middleware.SessionKeyCSRFToken: "stored-token",
	})

	form := url.Values{"csrf_token": {"attacker-token"}}
	w := testutil.PostForm(engine, "/submit", form, cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRF_PostWithMatchingTokenAccepted(t *testing.T) {
	engine := newCSRFRouter()
	cookies := testutil.PrimeSession(engine, map[string]string{
		middleware.SessionKeyCSRFToken: "stored-token",
	})

	form := url.Values{"csrf_token": {"stored-token"}}
	w := testutil.PostForm(engine, "/submit", form, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestCSRF_PostWithForeignSessionTokenRejected(t *testing.T) {
	// A token primed into one session must not validate against another.
	engine := newCSRFRouter()
	_ = testutil.PrimeSession(engine, map[string]string{
		middleware.SessionKeyCSRFToken: "stored-token",
	})

	form := url.Values{"csrf_token": {"stored-token"}}
	w := testutil.PostForm(engine, "/submit", form, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRF_OversizedChunkedBodyAnswers413(t *testing.T) {
	// With LimitRequestBody ahead of CSRF, a multipart body of unknown
	// length that blows the cap must surface as 413 from the form parse,
	// not as a missing-token 403.
	engine := testutil.NewRouter()
	engine.Use(middleware.LimitRequestBody(256))
	engine.Use(middleware.CSRF())
	engine.POST("/submit", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	cookies := testutil.PrimeSession(engine, map[string]string{
		middleware.SessionKeyCSRFToken: "stored-token",
	})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("csrf_token", "stored-token"))
	part, err := mw.CreateFormFile("file", "big.bin")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), 4096))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	body := io.NopCloser(&buf)
	w := testutil.PostBody(engine, "/submit", body, mw.FormDataContentType(), cookies)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestCSRFToken_IsStablePerSession(t *testing.T) {
	engine := newCSRFRouter()

	first := testutil.Get(engine, "/page", nil)
	require.Equal(t, http.StatusOK, first.Code)

	cookies := first.Result().Cookies()
	second := testutil.Get(engine, "/page", cookies)
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.NotEmpty(t, first.Body.String())
}
