// Package engine is the in-memory analytics engine for batting records.
//
// An Engine owns an ordered collection of *models.Record and exposes four
// operations over it:
//
//   - SortBy: stable merge sort by any field, ascending or descending
//   - FindByID: binary search on player id (re-sorts by id first if needed)
//   - TopK: the k records with the largest value of a field
//   - GroupAverage: mean batting average per team
//
// # Ordering
//
// Until the first sort the collection is in ingestion order. Each SortBy
// replaces the collection with a new slice in the requested order, and that
// order is what every later operation observes. FindByID needs id order: when
// the collection is not already ascending by id it is re-sorted by id, which
// discards the caller's previous ordering. The search result reports when
// that happened.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. It belongs to one session; a
// caller sharing it must serialise SortBy and FindByID (both may reorder the
// collection) against every other operation.
package engine

import (
	"slices"

	"go.uber.org/zap"

	"github.com/ajitpratap0/slugger/pkg/metrics"
	"github.com/ajitpratap0/slugger/pkg/models"
)

// Operation names used for logging and the operations metric.
const (
	OpLoad         = "load"
	OpSort         = "sort"
	OpFind         = "find"
	OpTopK         = "top_k"
	OpGroupAverage = "group_average"
)

// Ordering describes the order the collection is currently in.
type Ordering struct {
	Key        models.Field
	Descending bool
}

// Engine holds the record collection and runs analytics over it.
type Engine struct {
	records []*models.Record

	// order is nil while the collection is in ingestion order
	order *Ordering

	logger  *zap.Logger
	metrics *metrics.Registry
}

// New creates an empty engine. A nil logger is replaced with a no-op
// logger; a nil registry disables metrics.
func New(logger *zap.Logger, reg *metrics.Registry) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:  logger.With(zap.String("component", "engine")),
		metrics: reg,
	}
}

// Load replaces the collection with records, in the given order. The slice
// is copied; the records themselves are shared.
func (e *Engine) Load(records []*models.Record) {
	e.records = slices.Clone(records)
	e.order = nil

	e.metrics.ObserveOperation(OpLoad)
	e.metrics.SetCollectionSize(len(e.records))
	e.logger.Debug("collection loaded", zap.Int("records", len(e.records)))
}

// Len returns the number of records in the collection.
func (e *Engine) Len() int {
	return len(e.records)
}

// Records returns the collection in its current order. The returned slice
// is a copy and may be modified freely.
func (e *Engine) Records() []*models.Record {
	return slices.Clone(e.records)
}

// Ordering returns the order established by the most recent sort, and false
// while the collection is still in ingestion order.
func (e *Engine) Ordering() (Ordering, bool) {
	if e.order == nil {
		return Ordering{}, false
	}
	return *e.order, true
}
