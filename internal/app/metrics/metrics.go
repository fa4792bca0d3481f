package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "telefono"

const (
	LabelMethod = "method"
	LabelRoute  = "route"
	LabelStatus = "status"
	LabelReason = "reason"

	ReasonUnknownUser = "unknown_user"
	ReasonStore       = "store"
)

var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status",
		Namespace: Namespace,
	},
	[]string{LabelMethod, LabelRoute, LabelStatus},
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route",
		Namespace: Namespace,
		Buckets:   prometheus.DefBuckets,
	},
	[]string{LabelMethod, LabelRoute},
)

var TelefonosCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      "telefonos_created_total",
		Help:      "Phones created",
		Namespace: Namespace,
	},
)

var TelefonosDeleted = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      "telefonos_deleted_total",
		Help:      "Phone delete requests served",
		Namespace: Namespace,
	},
)

var TelefonosRejected = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      "telefonos_rejected_total",
		Help:      "Phone creations rejected, by reason",
		Namespace: Namespace,
	},
	[]string{LabelReason},
)

// Middleware records request count and latency per route
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
