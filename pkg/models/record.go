// Package models provides the batting record model used throughout slugger.
// A Record is one player's season batting line: identity, team, the raw
// counting stats and the derived batting average.
//
// Records are value objects. They are built once during ingestion through
// NewRecord or ParseRecord and are never mutated afterwards; the analytics
// engine only reorders pointers to them.
package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ajitpratap0/slugger/pkg/errors"
)

// Record is a single player-season batting line.
type Record struct {
	// ID is the player identifier (e.g. "ohtansh01"), unique within a dataset
	ID string `json:"player_id"`
	// Team is the team identifier (e.g. "LAA"), used for grouping
	Team string `json:"team_id"`

	AtBats       int `json:"ab"`
	Hits         int `json:"h"`
	HomeRuns     int `json:"hr"`
	RunsBattedIn int `json:"rbi"`
	Walks        int `json:"bb"`
	Strikeouts   int `json:"so"`

	// Average is Hits/AtBats rounded to three places. It is computed once
	// in NewRecord and must be recomputed if the counting stats ever change.
	Average float64 `json:"avg"`
}

// NewRecord builds a Record from already-parsed counting stats and computes
// its batting average.
func NewRecord(id, team string, atBats, hits, homeRuns, rbi, walks, strikeouts int) *Record {
	return &Record{
		ID:           id,
		Team:         team,
		AtBats:       atBats,
		Hits:         hits,
		HomeRuns:     homeRuns,
		RunsBattedIn: rbi,
		Walks:        walks,
		Strikeouts:   strikeouts,
		Average:      BattingAverage(hits, atBats),
	}
}

// ParseRecord builds a Record from the textual columns of one input row.
// Any numeric column that does not parse as a non-negative integer yields a
// validation error naming the column, so callers can skip the row.
func ParseRecord(id, team, atBats, hits, homeRuns, rbi, walks, strikeouts string) (*Record, error) {
	columns := [...]struct {
		name  string
		value string
	}{
		{"AB", atBats},
		{"H", hits},
		{"HR", homeRuns},
		{"RBI", rbi},
		{"BB", walks},
		{"SO", strikeouts},
	}

	var counts [len(columns)]int
	for i, col := range columns {
		n, err := parseCount(col.value)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeValidation, "invalid "+col.name+" value").
				WithDetail("player_id", id).
				WithDetail("column", col.name).
				WithDetail("value", col.value)
		}
		counts[i] = n
	}

	return NewRecord(id, team, counts[0], counts[1], counts[2], counts[3], counts[4], counts[5]), nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

// BattingAverage returns hits/atBats rounded to three decimal places.
//
// A player with no at-bats has an average of 0.0. That is a reporting policy
// that avoids a division by zero, not a mathematical identity.
func BattingAverage(hits, atBats int) float64 {
	if atBats == 0 {
		return 0.0
	}
	return Round3(float64(hits) / float64(atBats))
}

// Round3 rounds v to three decimal places, half away from zero.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// String formats the record as a single console line, for example
// "ohtansh01    (LAA)  AVG: 0.304  HR: 44  RBI:  95".
func (r *Record) String() string {
	return fmt.Sprintf("%-12s (%s)  AVG: %.3f  HR: %2d  RBI: %3d", r.ID, r.Team, r.Average, r.HomeRuns, r.RunsBattedIn)
}
