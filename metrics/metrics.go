package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "food_ordering"

// Login outcomes.
const (
	LoginSuccess        = "success"
	LoginUnknownContact = "unknown_contact"
	LoginBadCredentials = "bad_credentials"
)

// Metrics holds the application collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry prometheus.Gatherer

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	signups       prometheus.Counter
	logins        *prometheus.CounterVec
	logouts       prometheus.Counter
	ordersPlaced  prometheus.Counter
	orderRejected *prometheus.CounterVec
	feedClients   prometheus.Gauge
}

// New registers every collector on registerer. gatherer is what /metrics serves.
func New(registerer prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{
		registry: gatherer,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customer_signups_total",
			Help:      "Customers registered.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customer_logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		logouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customer_logouts_total",
			Help:      "Sessions closed by logout.",
		}),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders committed.",
		}),
		orderRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_rejected_total",
			Help:      "Orders refused, by error code.",
		}, []string{"code"}),
		feedClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "order_feed_clients",
			Help:      "Connected order feed websocket clients.",
		}),
	}

	registerer.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.signups,
		m.logins,
		m.logouts,
		m.ordersPlaced,
		m.orderRejected,
		m.feedClients,
	)
	return m
}

// NewDefault registers on the prometheus default registry.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

func (m *Metrics) RecordSignup() {
	if m == nil {
		return
	}
	m.signups.Inc()
}

func (m *Metrics) RecordLogin(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordLogout() {
	if m == nil {
		return
	}
	m.logouts.Inc()
}

func (m *Metrics) RecordOrderPlaced() {
	if m == nil {
		return
	}
	m.ordersPlaced.Inc()
}

func (m *Metrics) RecordOrderRejected(code string) {
	if m == nil {
		return
	}
	m.orderRejected.WithLabelValues(code).Inc()
}

func (m *Metrics) FeedClientConnected() {
	if m == nil {
		return
	}
	m.feedClients.Inc()
}

func (m *Metrics) FeedClientDisconnected() {
	if m == nil {
		return
	}
	m.feedClients.Dec()
}

// GinMiddleware records request count and latency per matched route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the gathered metrics in the prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	if m == nil || m.registry == nil {
		return gin.WrapH(promhttp.Handler())
	}
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
