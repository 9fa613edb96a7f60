package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the API and the send pipeline.
type Metrics struct {
	EmailsSent         prometheus.Counter
	EmailsFailed       prometheus.Counter
	RepliesDetected    prometheus.Counter
	OpensTracked       prometheus.Counter
	CampaignsCompleted prometheus.Counter
	CampaignsCancelled prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers the application metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the application metrics on reg. Tests pass a fresh
// registry so repeated construction does not collide.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EmailsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadreach_emails_sent_total",
			Help: "Campaign emails successfully handed to a provider",
		}),
		EmailsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadreach_emails_failed_total",
			Help: "Campaign emails that failed to send",
		}),
		RepliesDetected: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadreach_replies_detected_total",
			Help: "Inbound replies matched to a tracked thread",
		}),
		OpensTracked: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadreach_opens_tracked_total",
			Help: "Tracking pixel requests that flipped a send to opened",
		}),
		CampaignsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadreach_campaigns_completed_total",
			Help: "Campaign runs that reached completed",
		}),
		CampaignsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadreach_campaigns_cancelled_total",
			Help: "Campaigns cancelled by user action",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leadreach_http_requests_total",
			Help: "HTTP requests by method, path and status",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "leadreach_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// Middleware records request counts and latency per route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			m.httpRequests.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
