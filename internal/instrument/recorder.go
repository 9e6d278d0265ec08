// Package instrument exports container storage statistics as Prometheus metrics.
package instrument

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pavanmanishd/containers"
)

// Container label values.
const (
	ContainerVector = "vector"
	ContainerList   = "list"
	ContainerOwner  = "owner_vector"
)

// Recorder publishes workload results to a Prometheus registerer.
type Recorder struct {
	size          *prometheus.GaugeVec
	capacity      *prometheus.GaugeVec
	bytesReserved *prometheus.GaugeVec
	nodes         *prometheus.GaugeVec
	utilization   *prometheus.GaugeVec
	reallocs      *prometheus.CounterVec
	ops           *prometheus.CounterVec
	failures      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewRecorder registers the container metrics with reg under namespace.
// It panics if the metrics are already registered with reg.
func NewRecorder(reg prometheus.Registerer, namespace string) *Recorder {
	f := promauto.With(reg)
	labels := []string{"workload", "container"}
	return &Recorder{
		size: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "container_size",
			Help:      "Live elements at the end of the last run",
		}, labels),
		capacity: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "container_capacity",
			Help:      "Allocated element slots at the end of the last run",
		}, labels),
		bytesReserved: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "container_reserved_bytes",
			Help:      "Bytes of slot storage held by the container",
		}, labels),
		nodes: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "container_nodes",
			Help:      "Allocated list nodes",
		}, labels),
		utilization: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "container_utilization_ratio",
			Help:      "Ratio of live elements to capacity",
		}, labels),
		reallocs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "container_reallocations_total",
			Help:      "Storage reallocations performed",
		}, labels),
		ops: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workload_operations_total",
			Help:      "Container operations performed by workloads",
		}, []string{"workload", "kind"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workload_failures_total",
			Help:      "Workload runs that failed an invariant check",
		}, []string{"workload", "kind"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "workload_duration_seconds",
			Help:      "Workload run duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"workload", "kind"}),
	}
}

// RecordVector publishes a vector snapshot. container is one of
// ContainerVector or ContainerOwner.
func (r *Recorder) RecordVector(workload, container string, m containers.VectorMetrics) {
	r.size.WithLabelValues(workload, container).Set(float64(m.Size))
	r.capacity.WithLabelValues(workload, container).Set(float64(m.Capacity))
	r.bytesReserved.WithLabelValues(workload, container).Set(float64(m.BytesReserved))
	r.utilization.WithLabelValues(workload, container).Set(m.Utilization)
	r.reallocs.WithLabelValues(workload, container).Add(float64(m.Reallocations))
}

// RecordList publishes a list snapshot.
func (r *Recorder) RecordList(workload string, m containers.ListMetrics) {
	r.size.WithLabelValues(workload, ContainerList).Set(float64(m.Size))
	r.capacity.WithLabelValues(workload, ContainerList).Set(float64(m.Capacity))
	r.nodes.WithLabelValues(workload, ContainerList).Set(float64(m.NumNodes))
	r.utilization.WithLabelValues(workload, ContainerList).Set(m.Utilization)
}

// ObserveRun records the outcome of one workload run.
func (r *Recorder) ObserveRun(workload, kind string, ops int, d time.Duration, err error) {
	r.ops.WithLabelValues(workload, kind).Add(float64(ops))
	r.duration.WithLabelValues(workload, kind).Observe(d.Seconds())
	if err != nil {
		r.failures.WithLabelValues(workload, kind).Inc()
	}
}
