package engine

import (
	"go.uber.org/zap"

	"github.com/ajitpratap0/slugger/pkg/models"
)

// TeamAverage is the mean batting average of one team.
type TeamAverage struct {
	Team    string  `json:"team"`
	Average float64 `json:"avg"`
	Players int     `json:"players"`
}

// GroupAverages holds one TeamAverage per team, in the order each team was
// first encountered in the collection.
type GroupAverages []TeamAverage

// AsMap returns the averages keyed by team.
func (g GroupAverages) AsMap() map[string]float64 {
	m := make(map[string]float64, len(g))
	for _, t := range g {
		m[t.Team] = t.Average
	}
	return m
}

// Lookup returns the average for team.
func (g GroupAverages) Lookup(team string) (float64, bool) {
	for _, t := range g {
		if t.Team == team {
			return t.Average, true
		}
	}
	return 0, false
}

// Teams returns the team ids in encounter order.
func (g GroupAverages) Teams() []string {
	teams := make([]string, len(g))
	for i, t := range g {
		teams[i] = t.Team
	}
	return teams
}

// GroupAverage partitions the collection by team and returns the arithmetic
// mean of each team's batting averages, rounded to three places. Teams are
// discovered from the data. An empty collection yields an empty result.
func (e *Engine) GroupAverage() GroupAverages {
	e.metrics.ObserveOperation(OpGroupAverage)

	index := make(map[string]int)
	sums := make([]float64, 0)
	out := make(GroupAverages, 0)

	for _, r := range e.records {
		i, ok := index[r.Team]
		if !ok {
			i = len(out)
			index[r.Team] = i
			out = append(out, TeamAverage{Team: r.Team})
			sums = append(sums, 0)
		}
		sums[i] += r.Average
		out[i].Players++
	}

	for i := range out {
		out[i].Average = models.Round3(sums[i] / float64(out[i].Players))
	}

	e.logger.Debug("team averages computed", zap.Int("teams", len(out)))
	return out
}
