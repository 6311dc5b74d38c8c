package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"user-form/internal/infrastructure/metrics"
)

func TestRequestLogGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	mCounter := metrics.NewUnregisteredCounter()

	r := gin.New()
	r.Use(RequestLogGin(zap.New(core), mCounter))
	r.GET("/users", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	r.GET("/api/v1/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "abc"})
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil))

	entries := logs.All()
	require.Len(t, entries, 1, "metrics scrapes are not logged")
	fields := entries[0].ContextMap()
	assert.Equal(t, "/users", fields["url"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, "abc", fields["session"])
	assert.Equal(t, 1.0, testutil.ToFloat64(mCounter.WithLabelValues(metrics.AppRequests)))
}
