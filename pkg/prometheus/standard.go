package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "restaurants"

var (
	PanicCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "panic_total",
		Help:      "panic total counter.",
	}, []string{"method", "path"})

	RequestCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "http requests partitioned by route and status code.",
	}, []string{"method", "path", "status"})

	RequestDurationVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "http request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)

func init() {
	prometheus.MustRegister(PanicCounterVec, RequestCounterVec, RequestDurationVec)
}
