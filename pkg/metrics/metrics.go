// Package metrics provides Prometheus instrumentation for slugger. It tracks
// ingestion volume (rows read, loaded and skipped) and the analytics engine
// (operations run, binary-search step counts, sort latency, collection size).
//
// # Basic Usage
//
//	reg := metrics.NewRegistry()
//	reg.ObserveLoad(20, 18, 1, 1)
//	reg.ObserveOperation("top_k")
//	reg.ObserveSearch(4)
//
//	// Dump everything in the text exposition format
//	_ = reg.WriteText(os.Stderr)
//
// Every method is safe on a nil *Registry, so components can be built
// without instrumentation.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "slugger"

// Skip reasons used as the "reason" label on RowsSkipped.
const (
	ReasonFiltered  = "filtered"
	ReasonMalformed = "malformed"
)

// Registry owns a private Prometheus registry and the collectors registered
// on it.
type Registry struct {
	reg *prometheus.Registry

	RowsRead       prometheus.Counter
	RecordsLoaded  prometheus.Counter
	RowsSkipped    *prometheus.CounterVec
	Operations     *prometheus.CounterVec
	SearchSteps    prometheus.Histogram
	SortDuration   prometheus.Histogram
	CollectionSize prometheus.Gauge
}

// NewRegistry creates a Registry with all collectors registered.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	rowsRead := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingest",
		Name:      "rows_read_total",
		Help:      "Raw data rows examined by the batting source.",
	})
	loaded := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingest",
		Name:      "records_loaded_total",
		Help:      "Records constructed from input rows.",
	})
	skipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingest",
		Name:      "rows_skipped_total",
		Help:      "Rows dropped during ingestion, by reason.",
	}, []string{"reason"})
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "operations_total",
		Help:      "Analytics operations executed, by operation.",
	}, []string{"op"})
	steps := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "search_steps",
		Help:      "Comparison steps taken by binary search.",
		Buckets:   prometheus.LinearBuckets(1, 1, 20),
	})
	sortDur := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "sort_duration_seconds",
		Help:      "Wall time spent in merge sort.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
	})
	size := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "collection_size",
		Help:      "Records currently held by the engine.",
	})

	r.MustRegister(rowsRead, loaded, skipped, ops, steps, sortDur, size)
	return &Registry{
		reg:            r,
		RowsRead:       rowsRead,
		RecordsLoaded:  loaded,
		RowsSkipped:    skipped,
		Operations:     ops,
		SearchSteps:    steps,
		SortDuration:   sortDur,
		CollectionSize: size,
	}
}

// ObserveLoad records the outcome of one ingestion pass.
func (r *Registry) ObserveLoad(read, loaded, filtered, malformed int) {
	if r == nil {
		return
	}
	r.RowsRead.Add(float64(read))
	r.RecordsLoaded.Add(float64(loaded))
	r.RowsSkipped.WithLabelValues(ReasonFiltered).Add(float64(filtered))
	r.RowsSkipped.WithLabelValues(ReasonMalformed).Add(float64(malformed))
}

// ObserveOperation counts one analytics operation.
func (r *Registry) ObserveOperation(op string) {
	if r == nil {
		return
	}
	r.Operations.WithLabelValues(op).Inc()
}

// ObserveSearch records the step count of one binary search.
func (r *Registry) ObserveSearch(steps int) {
	if r == nil {
		return
	}
	r.SearchSteps.Observe(float64(steps))
}

// ObserveSort records how long one sort took.
func (r *Registry) ObserveSort(d time.Duration) {
	if r == nil {
		return
	}
	r.SortDuration.Observe(d.Seconds())
}

// SetCollectionSize updates the collection size gauge.
func (r *Registry) SetCollectionSize(n int) {
	if r == nil {
		return
	}
	r.CollectionSize.Set(float64(n))
}

// Gatherer exposes the underlying registry, mainly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteText writes every metric family in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
