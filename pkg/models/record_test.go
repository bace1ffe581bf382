package models

import (
	"testing"

	"github.com/ajitpratap0/slugger/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBattingAverage(t *testing.T) {
	tests := []struct {
		name   string
		hits   int
		atBats int
		want   float64
	}{
		{"rounds down", 90, 296, 0.304},
		{"exact", 30, 100, 0.300},
		{"rounds up", 2, 3, 0.667},
		{"perfect", 4, 4, 1.0},
		{"no hits", 0, 12, 0.0},
		{"no at-bats", 0, 0, 0.0},
		{"hits without at-bats", 3, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BattingAverage(tt.hits, tt.atBats))
		})
	}
}

func TestNewRecord(t *testing.T) {
	r := NewRecord("ohtansh01", "LAA", 537, 163, 44, 95, 72, 143)

	assert.Equal(t, "ohtansh01", r.ID)
	assert.Equal(t, "LAA", r.Team)
	assert.Equal(t, 537, r.AtBats)
	assert.Equal(t, 163, r.Hits)
	assert.Equal(t, 44, r.HomeRuns)
	assert.Equal(t, 95, r.RunsBattedIn)
	assert.Equal(t, 72, r.Walks)
	assert.Equal(t, 143, r.Strikeouts)
	assert.Equal(t, 0.304, r.Average)
}

func TestNewRecord_ZeroAtBats(t *testing.T) {
	var r *Record
	require.NotPanics(t, func() {
		r = NewRecord("pitcher01", "NYY", 0, 0, 0, 0, 0, 0)
	})
	assert.Equal(t, 0.0, r.Average)
}

func TestParseRecord(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		r, err := ParseRecord("aaa01", "NYY", "100", "30", "5", "20", "10", " 25 ")
		require.NoError(t, err)
		assert.Equal(t, 0.300, r.Average)
		assert.Equal(t, 25, r.Strikeouts)
	})

	tests := []struct {
		name   string
		fields [6]string
		column string
	}{
		{"non numeric at-bats", [6]string{"abc", "30", "5", "20", "10", "25"}, "AB"},
		{"empty strikeouts", [6]string{"100", "30", "5", "20", "10", ""}, "SO"},
		{"decimal home runs", [6]string{"100", "30", "5.5", "20", "10", "25"}, "HR"},
		{"negative walks", [6]string{"100", "30", "5", "20", "-1", "25"}, "BB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.fields
			r, err := ParseRecord("bad01", "BOS", f[0], f[1], f[2], f[3], f[4], f[5])
			require.Error(t, err)
			assert.Nil(t, r)
			assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

			column, ok := errors.Detail(err, "column")
			require.True(t, ok)
			assert.Equal(t, tt.column, column)
		})
	}
}

func TestRecordString(t *testing.T) {
	r := NewRecord("ohtansh01", "LAA", 537, 163, 44, 95, 72, 143)
	assert.Equal(t, "ohtansh01    (LAA)  AVG: 0.304  HR: 44  RBI:  95", r.String())
}
