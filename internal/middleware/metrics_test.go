package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/vehicle-assess-api/internal/metrics"
)

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics())
	router.GET("/bookings/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/bookings/:id", "418")
	read := func() float64 {
		m := &dto.Metric{}
		require.NoError(t, counter.Write(m))
		return m.GetCounter().GetValue()
	}

	before := read()
	for _, id := range []string{"a", "b"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/"+id, nil))
	}

	assert.Equal(t, before+2, read())
}
