package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.NotificationAttempt("email", "sent")
	m.NotificationAttempt("email", "sent")
	m.NotificationAttempt("sms", "failed")
	require.Equal(t, 2.0, testutil.ToFloat64(m.notifications.WithLabelValues("email", "sent")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("sms", "failed")))

	m.SweepCompleted("rent-overdue", 3, 1, 4, nil)
	m.SweepCompleted("rent-overdue", 0, 0, 0, errors.New("boom"))
	require.Equal(t, 1.0, testutil.ToFloat64(m.sweepRuns.WithLabelValues("rent-overdue", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.sweepRuns.WithLabelValues("rent-overdue", "error")))
	require.Equal(t, 3.0, testutil.ToFloat64(m.sweepNotified.WithLabelValues("rent-overdue")))
	require.Equal(t, 4.0, testutil.ToFloat64(m.sweepTransitioned.WithLabelValues("rent-overdue")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.NotificationAttempt("email", "sent")
	m.SweepCompleted("x", 1, 1, 1, nil)
	require.Nil(t, m.Registry())
	require.NotNil(t, m.Handler())
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/admin/tenants/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/tenants/"+id, nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	require.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/admin/tenants/:id", "204")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "rental_portal_http_requests_total"))
}
