package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "ottolink"

var (
	Gather = prometheus.NewRegistry()

	ProbeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "connectivity",
			Name:      "probes_total",
			Help:      "Counter of heartbeat probes by result.",
		}, []string{"result"})

	ProbeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "connectivity",
			Name:      "probe_duration_seconds",
			Help:      "Heartbeat probe latency.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		})

	ConnectedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "connectivity",
			Name:      "connected",
			Help:      "1 if the last tick found the install connected.",
		})

	StatusReadCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "connectivity",
			Name:      "status_reads_total",
			Help:      "Counter of connectivity reads by answer source.",
		}, []string{"source"})

	TriggerCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "connectivity",
			Name:      "immediate_checks_total",
			Help:      "Counter of immediate checks by outcome.",
		}, []string{"outcome"})

	ConnectCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "connect",
			Name:      "operations_total",
			Help:      "Counter of connect flow operations by outcome.",
		}, []string{"operation", "outcome"})

	RemoteRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "remote",
			Name:      "requests_total",
			Help:      "Counter of outbound platform requests.",
		}, []string{"endpoint", "outcome"})

	RemoteRetryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "remote",
			Name:      "retries_total",
			Help:      "Counter of retried outbound platform requests.",
		}, []string{"endpoint"})

	CacheCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "dashboard",
			Name:      "cache_lookups_total",
			Help:      "Counter of dashboard cache lookups.",
		}, []string{"cache", "result"})
)

func init() {
	Gather.MustRegister(ProbeCounter)
	Gather.MustRegister(ProbeDuration)
	Gather.MustRegister(ConnectedGauge)
	Gather.MustRegister(StatusReadCounter)
	Gather.MustRegister(TriggerCounter)
	Gather.MustRegister(ConnectCounter)
	Gather.MustRegister(RemoteRequestCounter)
	Gather.MustRegister(RemoteRetryCounter)
	Gather.MustRegister(CacheCounter)

	Gather.MustRegister(collectors.NewGoCollector())
	Gather.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Gather, promhttp.HandlerOpts{})
}

// BoolGauge converts a verdict for ConnectedGauge.
func BoolGauge(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
