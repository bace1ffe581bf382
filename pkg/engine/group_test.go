package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/slugger/pkg/models"
	tu "github.com/ajitpratap0/slugger/pkg/testutil"
)

func TestGroupAverage_SingleMemberGroups(t *testing.T) {
	records := []*models.Record{
		models.NewRecord("a", "NYY", 296, 90, 0, 0, 0, 0),
		models.NewRecord("b", "BOS", 3, 2, 0, 0, 0, 0),
		models.NewRecord("c", "SEA", 0, 0, 0, 0, 0, 0),
	}
	e, _ := newTestEngine(t, records)

	groups := e.GroupAverage()
	require.Len(t, groups, 3)
	for i, r := range records {
		assert.Equal(t, r.Team, groups[i].Team)
		assert.Equal(t, r.Average, groups[i].Average)
		assert.Equal(t, 1, groups[i].Players)
	}
}

func TestGroupAverage_TwoMembers(t *testing.T) {
	e, _ := newTestEngine(t, []*models.Record{
		models.NewRecord("p1", "CHC", 400, 100, 0, 0, 0, 0), // .250
		models.NewRecord("p2", "CHC", 200, 70, 0, 0, 0, 0),  // .350
	})

	avg, ok := e.GroupAverage().Lookup("CHC")
	require.True(t, ok)
	assert.Equal(t, 0.300, avg)
}

func TestGroupAverage_EncounterOrder(t *testing.T) {
	e, _ := newTestEngine(t, tu.RoundTripRecords())
	assert.Equal(t, []string{"NYY", "BOS"}, e.GroupAverage().Teams())

	// Encounter order follows the current collection order
	require.NoError(t, e.SortBy(models.FieldAverage, true))
	groups := e.GroupAverage()
	assert.Equal(t, []string{"BOS", "NYY"}, groups.Teams())
	assert.Equal(t, GroupAverages{
		{Team: "BOS", Average: 0.400, Players: 1},
		{Team: "NYY", Average: 0.250, Players: 2},
	}, groups)
}

func TestGroupAverage_Rounding(t *testing.T) {
	e, _ := newTestEngine(t, []*models.Record{
		models.NewRecord("p1", "MIL", 3, 1, 0, 0, 0, 0), // .333
		models.NewRecord("p2", "MIL", 3, 2, 0, 0, 0, 0), // .667
		models.NewRecord("p3", "MIL", 4, 1, 0, 0, 0, 0), // .250
	})

	avg, ok := e.GroupAverage().Lookup("MIL")
	require.True(t, ok)
	assert.Equal(t, 0.417, avg)
}

func TestGroupAverage_Empty(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	groups := e.GroupAverage()
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
	assert.Empty(t, groups.AsMap())

	_, ok := groups.Lookup("NYY")
	assert.False(t, ok)
}
