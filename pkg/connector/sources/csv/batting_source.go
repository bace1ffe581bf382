// Package csv reads Lahman-style Batting.csv files into batting records.
//
// The file must start with a header row. Only the columns playerID, teamID,
// AB, H, HR, RBI, BB and SO are used; any others are ignored. Rows are
// examined in file order up to the configured limit, which counts raw data
// rows and not loaded records:
//
//   - rows with an empty AB or H column are filtered out silently
//   - rows whose counting stats do not parse are skipped and counted as
//     malformed
//
// Neither case aborts the load. Compressed files (.gz, .zst, .lz4) are
// decompressed on the fly.
package csv

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ajitpratap0/slugger/pkg/compression"
	"github.com/ajitpratap0/slugger/pkg/errors"
	"github.com/ajitpratap0/slugger/pkg/metrics"
	"github.com/ajitpratap0/slugger/pkg/models"
)

// DefaultLimit is the number of data rows read when no limit is configured.
const DefaultLimit = 20

// Column names looked up in the header row.
const (
	ColumnPlayerID     = "playerID"
	ColumnTeamID       = "teamID"
	ColumnAtBats       = "AB"
	ColumnHits         = "H"
	ColumnHomeRuns     = "HR"
	ColumnRunsBattedIn = "RBI"
	ColumnWalks        = "BB"
	ColumnStrikeouts   = "SO"
)

var requiredColumns = []string{
	ColumnPlayerID,
	ColumnTeamID,
	ColumnAtBats,
	ColumnHits,
	ColumnHomeRuns,
	ColumnRunsBattedIn,
	ColumnWalks,
	ColumnStrikeouts,
}

// Config configures a BattingSource.
type Config struct {
	// Path to the CSV file
	Path string
	// Limit is the number of data rows to examine; <= 0 reads the whole file
	Limit int
	// Compression is "auto" (by extension), "none", "gzip", "zstd" or "lz4"
	Compression string
}

// LoadStats describes one ingestion pass. The counts are informational; a
// load succeeds or fails on its returned error alone.
type LoadStats struct {
	RowsRead  int `json:"rows_read"`
	Loaded    int `json:"loaded"`
	Filtered  int `json:"filtered"`
	Malformed int `json:"malformed"`
}

// BattingSource produces validated batting records from a CSV file.
type BattingSource struct {
	config      Config
	compression compression.Algorithm
	logger      *zap.Logger
	metrics     *metrics.Registry
}

// NewBattingSource validates cfg and creates a source. A nil logger is
// replaced with a no-op logger; a nil registry disables metrics.
func NewBattingSource(cfg Config, logger *zap.Logger, reg *metrics.Registry) (*BattingSource, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New(errors.ErrorTypeConfig, "batting file path is required")
	}
	alg, err := compression.ParseAlgorithm(cfg.Compression, cfg.Path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "invalid compression setting").
			WithDetail("compression", cfg.Compression)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &BattingSource{
		config:      cfg,
		compression: alg,
		logger:      logger.With(zap.String("component", "batting_source"), zap.String("file", cfg.Path)),
		metrics:     reg,
	}, nil
}

// Load opens the configured file and reads records from it.
func (s *BattingSource) Load(ctx context.Context) ([]*models.Record, LoadStats, error) {
	file, err := os.Open(s.config.Path)
	if err != nil {
		return nil, LoadStats{}, errors.Wrap(err, errors.ErrorTypeFile, "failed to open batting file").
			WithDetail("file", s.config.Path)
	}
	defer file.Close()

	r, err := compression.NewReader(file, s.compression)
	if err != nil {
		return nil, LoadStats{}, errors.Wrap(err, errors.ErrorTypeFile, "failed to open compressed batting file").
			WithDetail("file", s.config.Path).
			WithDetail("compression", string(s.compression))
	}
	defer r.Close()

	return s.Read(ctx, r)
}

// Read parses CSV content from r. It stops after Limit data rows, at end of
// input, or when ctx is cancelled.
func (s *BattingSource) Read(ctx context.Context, r io.Reader) ([]*models.Record, LoadStats, error) {
	var stats LoadStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, stats, errors.New(errors.ErrorTypeData, "batting file is empty")
		}
		return nil, stats, errors.Wrap(err, errors.ErrorTypeData, "failed to read header row")
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, stats, err
	}

	records := make([]*models.Record, 0)
	teams := make(teamIntern)
	for s.config.Limit <= 0 || stats.RowsRead < s.config.Limit {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		stats.RowsRead++

		if err != nil {
			var parseErr *csv.ParseError
			if !stderrors.As(err, &parseErr) {
				return nil, stats, errors.Wrap(err, errors.ErrorTypeFile, "failed to read batting file")
			}
			stats.Malformed++
			s.logger.Warn("skipping unparsable row", zap.Int("row", stats.RowsRead), zap.Error(err))
			continue
		}

		if cols.value(row, ColumnAtBats) == "" || cols.value(row, ColumnHits) == "" {
			stats.Filtered++
			continue
		}

		rec, err := models.ParseRecord(
			strings.Clone(cols.value(row, ColumnPlayerID)),
			teams.get(cols.value(row, ColumnTeamID)),
			cols.value(row, ColumnAtBats),
			cols.value(row, ColumnHits),
			cols.value(row, ColumnHomeRuns),
			cols.value(row, ColumnRunsBattedIn),
			cols.value(row, ColumnWalks),
			cols.value(row, ColumnStrikeouts),
		)
		if err != nil {
			stats.Malformed++
			s.logger.Warn("skipping malformed row", zap.Int("row", stats.RowsRead), zap.Error(err))
			continue
		}

		records = append(records, rec)
		stats.Loaded++
	}

	s.metrics.ObserveLoad(stats.RowsRead, stats.Loaded, stats.Filtered, stats.Malformed)
	s.logger.Info("batting records loaded",
		zap.Int("rows_read", stats.RowsRead),
		zap.Int("loaded", stats.Loaded),
		zap.Int("filtered", stats.Filtered),
		zap.Int("malformed", stats.Malformed))

	return records, stats, nil
}

// columnIndex maps required column names to their position in a row.
type columnIndex map[string]int

func mapColumns(header []string) (columnIndex, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := byName[name]; !dup {
			byName[name] = i
		}
	}

	cols := make(columnIndex, len(requiredColumns))
	var missing []string
	for _, c := range requiredColumns {
		i, ok := byName[strings.ToLower(c)]
		if !ok {
			missing = append(missing, c)
			continue
		}
		cols[c] = i
	}

	if len(missing) > 0 {
		return nil, errors.New(errors.ErrorTypeData, "batting file is missing required columns").
			WithDetail("missing", missing).
			WithDetail("header", header)
	}
	return cols, nil
}

// value returns the trimmed value of column in row, or "" when the row is
// too short to contain it.
func (c columnIndex) value(row []string, column string) string {
	i := c[column]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// teamIntern shares one copy of each team id across the records of a load.
// Fields returned by csv.Reader are slices of the whole row, so ids are
// copied before being kept.
type teamIntern map[string]string

func (t teamIntern) get(team string) string {
	if interned, ok := t[team]; ok {
		return interned
	}
	cloned := strings.Clone(team)
	t[cloned] = cloned
	return cloned
}
