package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/optic-derm-explorer/internal/domain"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestTimeout_SlowHandler(t *testing.T) {
	router := testRouter()
	router.Use(CorrelationID())
	router.Use(RequestTimeout(30 * time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		time.Sleep(300 * time.Millisecond)
		c.Status(http.StatusOK)
	})

	w := serve(router, http.MethodGet, "/slow")
	require.Equal(t, http.StatusRequestTimeout, w.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrRequestTimeout, apiErr.Code)
}

func TestRequestTimeout_FastHandler(t *testing.T) {
	router := testRouter()
	router.Use(RequestTimeout(time.Second))
	router.GET("/fast", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := serve(router, http.MethodGet, "/fast")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestUploadRateLimit(t *testing.T) {
	router := testRouter()
	// One token, no refill within the test window
	limiter := rate.NewLimiter(rate.Limit(0.001), 1)
	router.POST("/upload", UploadRateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := serve(router, http.MethodPost, "/upload")
	assert.Equal(t, http.StatusOK, first.Code)

	second := serve(router, http.MethodPost, "/upload")
	require.Equal(t, http.StatusTooManyRequests, second.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrRateLimit, apiErr.Code)
}

func TestCorrelationID_GeneratesWhenAbsent(t *testing.T) {
	router := testRouter()
	router.Use(CorrelationID())

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	router.Use(RequestLogger(logger))

	router.GET("/", func(c *gin.Context) {
		assert.NotEmpty(t, c.GetString("correlation_id"))
		c.Status(http.StatusOK)
	})

	w := serve(router, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
}
