// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hydrasig"

// Codec operation names.
const (
	OpDecode    = "decode"
	OpEncode    = "encode"
	OpParse     = "parse"
	OpFormat    = "format"
	OpCanonical = "canonical"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

var (
	// the number of SIG codec operations by operation and result
	CodecOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "codec",
		Name:      "operations_total",
		Help:      "Counter of SIG codec operations.",
	}, []string{"op", "result"})

	// the number of SIG records in the store
	StoredRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "records",
		Help:      "Number of SIG records in the store.",
	})

	// the number of SIG records loaded from zone files, by zone origin
	ZoneSignatures = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "zone",
		Name:      "signatures",
		Help:      "Number of SIG records loaded per zone.",
	}, []string{"zone"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of API requests.",
	}, []string{"method", "route", "status_code"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "API request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// ObserveCodec counts one codec operation.
func ObserveCodec(op string, err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	CodecOperations.WithLabelValues(op, result).Inc()
}
