// Package slugger is an in-memory analytics engine for baseball batting
// records.
//
// Slugger loads a Lahman-style Batting.csv (optionally gzip, zstd or lz4
// compressed) into memory and answers questions about it:
//   - list the players in their current order
//   - sort by any stat with a stable merge sort
//   - look a player up by id with binary search
//   - rank the top k players by a stat using a bounded heap
//   - compute the mean batting average of every team
//
// # Architecture
//
// The repository is organized as:
//
//	pkg/models                  Record, the closed Field enum, batting average rounding
//	pkg/engine                  the collection and the four analytics operations
//	pkg/connector/sources/csv   Batting.csv ingestion (row limit, filtering, decompression)
//	pkg/render                  console and JSON presentation
//	pkg/config                  YAML configuration with ${ENV} substitution
//	pkg/logger                  zap-based structured logging
//	pkg/errors                  typed errors (validation, usage, file, data, config)
//	pkg/metrics                 Prometheus instrumentation
//	pkg/observability           OpenTelemetry tracing
//	internal/pipeline           sessions wiring source, engine and renderer
//	cmd/slugger                 the command-line interface
//
// # Quick Start
//
//	import (
//	    "github.com/ajitpratap0/slugger/pkg/engine"
//	    "github.com/ajitpratap0/slugger/pkg/models"
//	)
//
//	e := engine.New(logger, nil)
//	e.Load(records)
//
//	if err := e.SortBy(models.FieldAverage, true); err != nil {
//	    return err
//	}
//	top, _ := e.TopK(3, models.FieldHomeRuns)
//	res := e.FindByID("barnero01")
//	teams := e.GroupAverage()
//
// # Command Line
//
//	slugger demo --data Batting.csv
//	slugger sort avg --data Batting.csv --limit 0
//	slugger top hr -k 10 --data Batting.csv.zst -o json
//	slugger find ruthba01 gehrilo01 --data Batting.csv.gz --limit 0
//	slugger teams --config slugger.yaml --trace --metrics
//
// Results go to stdout; logs, traces and metrics go to stderr.
package slugger
