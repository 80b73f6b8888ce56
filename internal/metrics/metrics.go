package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// checkout outcome labels
const (
	OutcomeCompleted         = "completed"
	OutcomeEmptyCart         = "empty_cart"
	OutcomeInvalid           = "invalid"
	OutcomeTicketNotFound    = "ticket_not_found"
	OutcomeInsufficientStock = "insufficient_stock"
	OutcomeFailed            = "failed"
)

var (
	checkoutTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_total",
			Help: "Checkout attempts by outcome",
		},
		[]string{"outcome"},
	)

	checkoutDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_duration_seconds",
			Help:    "Time spent in the checkout transaction",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"outcome"},
	)

	ticketsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_sold_total",
			Help: "Ticket units sold by committed checkouts",
		},
	)

	activityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_log_events_total",
			Help: "Activity log publish and persist results",
		},
		[]string{"stage", "status"},
	)

	httpRequests = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func ObserveCheckout(outcome string, elapsed time.Duration) {
	checkoutTotal.WithLabelValues(outcome).Inc()
	checkoutDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func AddTicketsSold(units int) {
	ticketsSold.Add(float64(units))
}

// ObserveActivity stage 為 publish 或 persist
func ObserveActivity(stage string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	activityEvents.WithLabelValues(stage, status).Inc()
}

// Middleware 記錄每個請求的延遲；未匹配路由一律記為 unmatched 避免 label 爆量
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
