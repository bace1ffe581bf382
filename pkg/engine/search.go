package engine

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/ajitpratap0/slugger/pkg/models"
)

// SearchResult is the outcome of FindByID. A miss is not an error: Found is
// false and Record is nil.
type SearchResult struct {
	Record *models.Record `json:"record,omitempty"`
	Found  bool           `json:"found"`
	// Steps is the number of probes the binary search made
	Steps int `json:"steps"`
	// Resorted is true when the collection had to be re-sorted by id before
	// searching, replacing whatever order it was in.
	Resorted bool `json:"resorted"`
}

// FindByID looks up a record by player id with an iterative binary search.
//
// The collection must be ascending by id. If it is not, FindByID re-sorts it
// by id first and that order persists after the call. When ids are not
// unique the result is whichever duplicate the search probes first.
func (e *Engine) FindByID(id string) SearchResult {
	var res SearchResult
	e.metrics.ObserveOperation(OpFind)

	if len(e.records) == 0 {
		e.metrics.ObserveSearch(0)
		return res
	}

	if !e.sortedByID() {
		e.records = sortRecords(e.records, models.FieldID, false)
		e.order = &Ordering{Key: models.FieldID}
		res.Resorted = true
	}

	low, high := 0, len(e.records)-1
	for low <= high {
		res.Steps++
		mid := low + (high-low)/2

		switch c := strings.Compare(e.records[mid].ID, id); {
		case c == 0:
			res.Record = e.records[mid]
			res.Found = true
			e.observeSearch(id, res)
			return res
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	e.observeSearch(id, res)
	return res
}

// sortedByID reports whether the collection is ascending by id. A previous
// ascending id sort is trusted; anything else is checked with a linear scan.
func (e *Engine) sortedByID() bool {
	if e.order != nil && e.order.Key == models.FieldID && !e.order.Descending {
		return true
	}
	return slices.IsSortedFunc(e.records, models.FieldID.Compare)
}

func (e *Engine) observeSearch(id string, res SearchResult) {
	e.metrics.ObserveSearch(res.Steps)
	e.logger.Debug("binary search finished",
		zap.String("id", id),
		zap.Bool("found", res.Found),
		zap.Int("steps", res.Steps))
}
