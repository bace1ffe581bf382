package engine

import (
	"container/heap"

	"go.uber.org/zap"

	"github.com/ajitpratap0/slugger/pkg/errors"
	"github.com/ajitpratap0/slugger/pkg/models"
)

// TopK returns the k records with the largest value of key, largest first.
//
// Selection uses a size-k min-heap, O(n log k). When k covers the whole
// collection it falls back to a full descending merge sort. Equal values are
// ranked by their position in the current collection order, earlier first,
// so the result always equals the first k records of SortBy(key, true).
// k <= 0 or an empty collection yields an empty result. The collection
// itself is not reordered.
func (e *Engine) TopK(k int, key models.Field) ([]*models.Record, error) {
	if !key.Valid() {
		return nil, errors.New(errors.ErrorTypeUsage, "unknown ranking key").
			WithDetail("key", int(key))
	}
	e.metrics.ObserveOperation(OpTopK)

	if k <= 0 || len(e.records) == 0 {
		return []*models.Record{}, nil
	}

	if k >= len(e.records) {
		e.logger.Debug("top-k covers the collection, using full sort",
			zap.Int("k", k), zap.Int("records", len(e.records)))
		return sortRecords(e.records, key, true), nil
	}

	h := &rankHeap{key: key, entries: make([]rankEntry, 0, k)}
	for pos, r := range e.records {
		entry := rankEntry{record: r, pos: pos}
		if h.Len() < k {
			heap.Push(h, entry)
			continue
		}
		// entries[0] is the weakest of the current top k
		if h.ranksBelow(h.entries[0], entry) {
			h.entries[0] = entry
			heap.Fix(h, 0)
		}
	}

	out := make([]*models.Record, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(rankEntry).record
	}

	e.logger.Debug("top-k selected", zap.Int("k", k), zap.Stringer("key", key))
	return out, nil
}

type rankEntry struct {
	record *models.Record
	pos    int
}

// rankHeap is a min-heap on rank: the root is the entry that would be
// dropped first.
type rankHeap struct {
	key     models.Field
	entries []rankEntry
}

// ranksBelow reports whether a ranks strictly below b: a smaller value, or
// an equal value seen later in the collection.
func (h *rankHeap) ranksBelow(a, b rankEntry) bool {
	if c := h.key.Compare(a.record, b.record); c != 0 {
		return c < 0
	}
	return a.pos > b.pos
}

func (h *rankHeap) Len() int           { return len(h.entries) }
func (h *rankHeap) Less(i, j int) bool { return h.ranksBelow(h.entries[i], h.entries[j]) }
func (h *rankHeap) Swap(i, j int)      { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *rankHeap) Push(x any) {
	h.entries = append(h.entries, x.(rankEntry))
}

func (h *rankHeap) Pop() any {
	n := len(h.entries)
	e := h.entries[n-1]
	h.entries = h.entries[:n-1]
	return e
}
