package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "marqueebackoffice"
)

var (
	MaterializedInstances = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "calendar", "materialized_instances_total"),
		Help: "Number of event instances created by materialization",
	}, []string{"trigger"})
	MaterializeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "calendar", "materialize_duration_seconds"),
		Help:    "Duration of a single materialization call in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
	}, []string{"trigger"})
	WorkerRunDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "worker", "run_duration_seconds"),
		Help: "Duration of the last horizon worker sweep in seconds",
	}, []string{})
)
