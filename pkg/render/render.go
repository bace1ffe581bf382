// Package render presents analytics results to the user.
//
// Two renderers are provided. Console writes the human-readable report the
// slugger CLI prints by default:
//
//	Successfully loaded 3 players from Batting.csv
//
//	--- Player Statistics ---
//	aaa01        (NYY)  AVG: 0.300  HR: 12  RBI:  40
//	...
//
// JSON writes one JSON document per call, newline delimited, for piping
// into other tools.
package render

import (
	"io"
	"strings"

	csvsource "github.com/ajitpratap0/slugger/pkg/connector/sources/csv"
	"github.com/ajitpratap0/slugger/pkg/engine"
	"github.com/ajitpratap0/slugger/pkg/errors"
	"github.com/ajitpratap0/slugger/pkg/models"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer presents the result of each analytics operation.
type Renderer interface {
	// Loaded reports a completed ingestion pass.
	Loaded(source string, stats csvsource.LoadStats) error
	// Players lists records in their current order.
	Players(records []*models.Record) error
	// Sorted reports that the collection was sorted.
	Sorted(order engine.Ordering) error
	// Search reports the outcome of a lookup by player id.
	Search(id string, result engine.SearchResult) error
	// Ranking lists the top-k records for key, best first. available is the
	// size of the collection the ranking was drawn from.
	Ranking(k int, key models.Field, records []*models.Record, available int) error
	// TeamAverages lists the per-team mean batting averages.
	TeamAverages(groups engine.GroupAverages) error
	// Fields lists the field names that can be used as keys.
	Fields(fields []models.Field) error
	// Section starts a titled block of output.
	Section(title string) error
}

// New returns the renderer for format, writing to w.
func New(format string, w io.Writer) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText, "console":
		return NewConsole(w), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, errors.Newf(errors.ErrorTypeUsage, "unknown output format %q", format).
			WithDetail("valid", []string{FormatText, FormatJSON})
	}
}

func direction(descending bool) string {
	if descending {
		return "descending"
	}
	return "ascending"
}
