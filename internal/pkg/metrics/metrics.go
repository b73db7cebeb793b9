package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NotificationsCreated counts in-app notifications by severity
var NotificationsCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notifications_created_total",
		Help: "Number of in-app notifications created, labeled by severity.",
	},
	[]string{"severity"},
)

// HTTPRequests counts handled HTTP requests by method, path and status
var HTTPRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of handled HTTP requests.",
	},
	[]string{"method", "path", "status"},
)
