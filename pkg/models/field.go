package models

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/ajitpratap0/slugger/pkg/errors"
)

// Field identifies a Record attribute that can be used as a sort, search or
// ranking key. The set is closed; names are resolved once per call with
// ParseField instead of by reflection.
type Field int

const (
	FieldID Field = iota
	FieldTeam
	FieldAtBats
	FieldHits
	FieldHomeRuns
	FieldRunsBattedIn
	FieldWalks
	FieldStrikeouts
	FieldAverage

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldID:           "id",
	FieldTeam:         "team",
	FieldAtBats:       "ab",
	FieldHits:         "h",
	FieldHomeRuns:     "hr",
	FieldRunsBattedIn: "rbi",
	FieldWalks:        "bb",
	FieldStrikeouts:   "so",
	FieldAverage:      "avg",
}

// fieldAliases maps lower-cased alternative names onto fields. The CSV
// header names and the long descriptive names are both accepted.
var fieldAliases = map[string]Field{
	"player_id":      FieldID,
	"playerid":       FieldID,
	"team_id":        FieldTeam,
	"teamid":         FieldTeam,
	"group":          FieldTeam,
	"at_bats":        FieldAtBats,
	"hits":           FieldHits,
	"home_runs":      FieldHomeRuns,
	"runs_batted_in": FieldRunsBattedIn,
	"walks":          FieldWalks,
	"strikeouts":     FieldStrikeouts,
	"average":        FieldAverage,
}

// numericAccessors reads the numeric value of a field. ID and Team are
// compared as strings and have no entry.
var numericAccessors = [fieldCount]func(*Record) float64{
	FieldAtBats:       func(r *Record) float64 { return float64(r.AtBats) },
	FieldHits:         func(r *Record) float64 { return float64(r.Hits) },
	FieldHomeRuns:     func(r *Record) float64 { return float64(r.HomeRuns) },
	FieldRunsBattedIn: func(r *Record) float64 { return float64(r.RunsBattedIn) },
	FieldWalks:        func(r *Record) float64 { return float64(r.Walks) },
	FieldStrikeouts:   func(r *Record) float64 { return float64(r.Strikeouts) },
	FieldAverage:      func(r *Record) float64 { return r.Average },
}

// ParseField resolves a key name to a Field. Matching is case-insensitive
// and accepts canonical names ("hr"), CSV headers ("HR", "playerID") and
// long names ("home_runs"). Unknown names return a usage error.
func ParseField(name string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for f, n := range fieldNames {
		if n == key {
			return Field(f), nil
		}
	}
	if f, ok := fieldAliases[key]; ok {
		return f, nil
	}
	return 0, errors.Newf(errors.ErrorTypeUsage, "unknown field %q", name).
		WithDetail("field", name).
		WithDetail("valid", FieldNames())
}

// Fields returns every field in declaration order.
func Fields() []Field {
	out := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		out = append(out, f)
	}
	return out
}

// FieldNames returns the canonical name of every field.
func FieldNames() []string {
	out := make([]string, 0, fieldCount)
	for _, n := range fieldNames {
		out = append(out, n)
	}
	return out
}

// Valid reports whether f is one of the declared fields.
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

// String returns the canonical field name.
func (f Field) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return fieldNames[f]
}

// Numeric reports whether the field holds a number.
func (f Field) Numeric() bool {
	return f.Valid() && numericAccessors[f] != nil
}

// Value returns the numeric value of the field on r, or 0 for the string
// fields.
func (f Field) Value(r *Record) float64 {
	if !f.Numeric() {
		return 0
	}
	return numericAccessors[f](r)
}

// Text returns the field value on r formatted for display.
func (f Field) Text(r *Record) string {
	switch f {
	case FieldID:
		return r.ID
	case FieldTeam:
		return r.Team
	case FieldAverage:
		return formatAverage(r.Average)
	default:
		return formatCount(f.Value(r))
	}
}

// Compare orders a and b by the field: negative when a sorts before b,
// zero when equal, positive otherwise. Strings compare lexicographically.
func (f Field) Compare(a, b *Record) int {
	switch f {
	case FieldID:
		return strings.Compare(a.ID, b.ID)
	case FieldTeam:
		return strings.Compare(a.Team, b.Team)
	default:
		return cmp.Compare(f.Value(a), f.Value(b))
	}
}

func formatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func formatCount(v float64) string {
	return strconv.FormatInt(int64(v), 10)
}
