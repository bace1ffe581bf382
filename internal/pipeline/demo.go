package pipeline

import (
	"context"

	"github.com/ajitpratap0/slugger/pkg/models"
	"github.com/ajitpratap0/slugger/pkg/observability"
)

// Player ids searched by the demo: one present in the first rows of the
// Lahman Batting.csv and one that is never present.
const (
	DemoPresentID = "barnero01"
	DemoMissingID = "nancyk05"
)

// demoTopK is the ranking size used by the demo.
const demoTopK = 3

// Demo runs the scripted tour of every operation: load, list, sort by
// average and by home runs, two searches, two rankings and team averages.
func (s *Session) Demo(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "slugger.demo")
	err := s.demo(ctx)
	observability.EndSpan(span, err)
	return err
}

func (s *Session) demo(ctx context.Context) error {
	steps := []func() error{
		func() error { return s.Load(ctx) },
		func() error { return s.List(ctx) },
		func() error { return s.Sort(ctx, models.FieldAverage.String(), true) },
		func() error { return s.List(ctx) },
		func() error { return s.Sort(ctx, models.FieldHomeRuns.String(), true) },
		func() error { return s.List(ctx) },
		func() error { return s.renderer.Section("Binary Search Tests") },
		func() error { _, err := s.Find(ctx, DemoPresentID); return err },
		func() error { _, err := s.Find(ctx, DemoMissingID); return err },
		func() error { return s.renderer.Section("Top Home Run Hitters") },
		func() error { return s.Top(ctx, demoTopK, models.FieldHomeRuns.String()) },
		func() error { return s.renderer.Section("Top Batting Averages") },
		func() error { return s.Top(ctx, demoTopK, models.FieldAverage.String()) },
		func() error { return s.Teams(ctx) },
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
