package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taskboard_requests_total",
		Help: "Total number of HTTP requests handled, by route.",
	}, []string{"method", "path"})

	ErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taskboard_errors_total",
		Help: "Total number of HTTP error responses, by route and status.",
	}, []string{"path", "status"})

	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "taskboard_request_duration_seconds",
		Help:    "HTTP request latency, by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	PointsAwarded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "taskboard_points_awarded_total",
		Help: "Total points credited to volunteers through approvals.",
	})
)

func Register() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(ErrorsTotal)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(PointsAwarded)
}
