package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCheckout(t *testing.T) {
	before := testutil.ToFloat64(checkoutTotal.WithLabelValues(OutcomeInsufficientStock))

	ObserveCheckout(OutcomeInsufficientStock, 12*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(checkoutTotal.WithLabelValues(OutcomeInsufficientStock)))
}

func TestAddTicketsSold(t *testing.T) {
	before := testutil.ToFloat64(ticketsSold)

	AddTicketsSold(3)

	assert.Equal(t, before+3, testutil.ToFloat64(ticketsSold))
}

func TestObserveActivity(t *testing.T) {
	before := testutil.ToFloat64(activityEvents.WithLabelValues("publish", "error"))

	ObserveActivity("publish", errors.New("redis down"))

	assert.Equal(t, before+1, testutil.ToFloat64(activityEvents.WithLabelValues("publish", "error")))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, testutil.CollectAndCount(httpRequests, "http_request_duration_seconds"))
}
