// Package pipeline runs slugger analytics sessions: it loads a batting file
// into an engine and drives the analytics operations, handing each result
// to a renderer.
//
// # Overview
//
// A Session ties together:
//   - Source: the CSV batting source built from the data config
//   - Engine: the in-memory collection the operations run against
//   - Renderer: console or JSON output
//   - Tracer and Metrics: a span and a counter per operation
//
// # Basic Usage
//
//	session, err := pipeline.NewSession(pipeline.Options{
//	    Config:   cfg,
//	    Renderer: render.NewConsole(os.Stdout),
//	    Logger:   logger,
//	})
//	if err != nil {
//	    return err
//	}
//
//	if err := session.Load(ctx); err != nil {
//	    return err
//	}
//	err = session.Top(ctx, 3, "hr")
//
// A Session is single-use and not safe for concurrent use, like the engine
// it owns.
package pipeline

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ajitpratap0/slugger/pkg/config"
	csvsource "github.com/ajitpratap0/slugger/pkg/connector/sources/csv"
	"github.com/ajitpratap0/slugger/pkg/engine"
	"github.com/ajitpratap0/slugger/pkg/errors"
	"github.com/ajitpratap0/slugger/pkg/metrics"
	"github.com/ajitpratap0/slugger/pkg/models"
	"github.com/ajitpratap0/slugger/pkg/observability"
	"github.com/ajitpratap0/slugger/pkg/render"
)

// Options configures a Session. Config and Renderer are required; the rest
// may be nil.
type Options struct {
	Config   *config.Config
	Renderer render.Renderer
	Tracer   *observability.Tracer
	Metrics  *metrics.Registry
	Logger   *zap.Logger
}

// Session is one analytics run over one batting file.
type Session struct {
	config   *config.Config
	source   *csvsource.BattingSource
	engine   *engine.Engine
	renderer render.Renderer
	tracer   *observability.Tracer
	logger   *zap.Logger

	stats csvsource.LoadStats
}

// NewSession validates opts and builds the source and engine.
func NewSession(opts Options) (*Session, error) {
	if opts.Config == nil {
		return nil, errors.New(errors.ErrorTypeConfig, "session config is required")
	}
	if opts.Renderer == nil {
		return nil, errors.New(errors.ErrorTypeConfig, "session renderer is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	source, err := csvsource.NewBattingSource(csvsource.Config{
		Path:        opts.Config.Data.Path,
		Limit:       opts.Config.Data.Limit,
		Compression: opts.Config.Data.Compression,
	}, logger, opts.Metrics)
	if err != nil {
		return nil, err
	}

	return &Session{
		config:   opts.Config,
		source:   source,
		engine:   engine.New(logger, opts.Metrics),
		renderer: opts.Renderer,
		tracer:   opts.Tracer,
		logger:   logger.With(zap.String("component", "session")),
	}, nil
}

// Engine returns the engine the session runs against.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// Stats returns the statistics of the last load.
func (s *Session) Stats() csvsource.LoadStats {
	return s.stats
}

// Load reads the configured batting file into the engine and reports it.
func (s *Session) Load(ctx context.Context) error {
	return s.run(ctx, engine.OpLoad, func(ctx context.Context) error {
		records, stats, err := s.source.Load(ctx)
		if err != nil {
			return err
		}
		s.engine.Load(records)
		s.stats = stats
		return s.renderer.Loaded(s.config.Data.Path, stats)
	}, attribute.String("data.path", s.config.Data.Path), attribute.Int("data.limit", s.config.Data.Limit))
}

// List renders every record in the current order.
func (s *Session) List(ctx context.Context) error {
	return s.run(ctx, "list", func(context.Context) error {
		return s.renderer.Players(s.engine.Records())
	})
}

// Sort orders the collection by the named field.
func (s *Session) Sort(ctx context.Context, key string, descending bool) error {
	return s.run(ctx, engine.OpSort, func(context.Context) error {
		field, err := models.ParseField(key)
		if err != nil {
			return err
		}
		if err := s.engine.SortBy(field, descending); err != nil {
			return err
		}
		return s.renderer.Sorted(engine.Ordering{Key: field, Descending: descending})
	}, attribute.String("key", key), attribute.Bool("descending", descending))
}

// Find looks up a player by id and renders the outcome. A miss is not an
// error.
func (s *Session) Find(ctx context.Context, id string) (engine.SearchResult, error) {
	var result engine.SearchResult
	err := s.run(ctx, engine.OpFind, func(ctx context.Context) error {
		result = s.engine.FindByID(id)
		if result.Resorted {
			observability.LoggerWithSpan(ctx, s.logger).Debug("collection re-sorted by id for search",
				zap.String("id", id), zap.Int("records", s.engine.Len()))
		}
		return s.renderer.Search(id, result)
	}, attribute.String("id", id))
	return result, err
}

// Top renders the k best records by the named field.
func (s *Session) Top(ctx context.Context, k int, key string) error {
	return s.run(ctx, engine.OpTopK, func(context.Context) error {
		field, err := models.ParseField(key)
		if err != nil {
			return err
		}
		top, err := s.engine.TopK(k, field)
		if err != nil {
			return err
		}
		return s.renderer.Ranking(k, field, top, s.engine.Len())
	}, attribute.Int("k", k), attribute.String("key", key))
}

// Teams renders the mean batting average of every team.
func (s *Session) Teams(ctx context.Context) error {
	return s.run(ctx, engine.OpGroupAverage, func(context.Context) error {
		return s.renderer.TeamAverages(s.engine.GroupAverage())
	})
}

// run executes fn inside a span named after op and logs failures.
func (s *Session) run(ctx context.Context, op string, fn func(context.Context) error, attrs ...attribute.KeyValue) error {
	ctx, span := s.tracer.Start(ctx, "slugger."+op, attrs...)
	err := fn(ctx)
	observability.EndSpan(span, err)

	if err != nil {
		observability.LoggerWithSpan(ctx, s.logger).Debug("operation failed",
			zap.String("operation", op), zap.Error(err))
	}
	return err
}
