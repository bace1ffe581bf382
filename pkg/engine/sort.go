package engine

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/ajitpratap0/slugger/pkg/errors"
	"github.com/ajitpratap0/slugger/pkg/models"
)

// SortBy reorders the collection by key using a stable merge sort.
//
// Records with equal keys keep their relative order in both directions, so
// sorting by one key and then another is reproducible. An invalid key is a
// usage error and leaves the collection untouched.
func (e *Engine) SortBy(key models.Field, descending bool) error {
	if !key.Valid() {
		return errors.New(errors.ErrorTypeUsage, "unknown sort key").
			WithDetail("key", int(key))
	}

	start := time.Now()
	e.records = sortRecords(e.records, key, descending)
	e.order = &Ordering{Key: key, Descending: descending}
	elapsed := time.Since(start)

	e.metrics.ObserveOperation(OpSort)
	e.metrics.ObserveSort(elapsed)
	e.logger.Debug("collection sorted",
		zap.Stringer("key", key),
		zap.Bool("descending", descending),
		zap.Int("records", len(e.records)),
		zap.Duration("duration", elapsed))

	return nil
}

// sortRecords returns a new slice holding records ordered by key. The input
// slice is not modified.
func sortRecords(records []*models.Record, key models.Field, descending bool) []*models.Record {
	if len(records) <= 1 {
		return slices.Clone(records)
	}
	return mergeSort(records, key, descending)
}

// mergeSort is a top-down merge sort. Slices of length <= 1 are returned as
// is; every merge allocates its output, so the input is never written.
func mergeSort(records []*models.Record, key models.Field, descending bool) []*models.Record {
	if len(records) <= 1 {
		return records
	}

	mid := len(records) / 2
	left := mergeSort(records[:mid], key, descending)
	right := mergeSort(records[mid:], key, descending)

	return merge(left, right, key, descending)
}

// merge combines two ordered runs. On equal keys the left run wins in both
// directions, which is what makes the sort stable.
func merge(left, right []*models.Record, key models.Field, descending bool) []*models.Record {
	merged := make([]*models.Record, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		c := key.Compare(left[i], right[j])
		if descending {
			c = -c
		}
		if c <= 0 {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}

	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	return merged
}
