package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dracula-tv/media-backend/internal/logger"
)

func TestLogging_Handle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	l := NewLogging(logger.NewWithWriter(&buf, 0))

	r := gin.New()
	r.Use(l.Handle)
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("db down"))
		c.Status(http.StatusInternalServerError)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?X-Amz-Signature=secret", nil))
	out := buf.String()
	assert.Contains(t, out, "HTTP request completed")
	assert.Contains(t, out, "path=/ok")
	assert.Contains(t, out, "status=200")
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "HTTP request failed")

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	out = buf.String()
	assert.Contains(t, out, "HTTP request failed")
	assert.Contains(t, out, "db down")
}
