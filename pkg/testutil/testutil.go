// Package testutil provides testing utilities for slugger
package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/ajitpratap0/slugger/pkg/compression"
	"github.com/ajitpratap0/slugger/pkg/models"
)

// BattingHeader is the header row of a Lahman-style Batting.csv, trimmed to
// the columns slugger reads plus a few it ignores.
const BattingHeader = "playerID,yearID,stint,teamID,lgID,G,AB,R,H,2B,3B,HR,RBI,SB,CS,BB,SO"

// TestLogger creates a test logger that writes to the test output.
// The logger is automatically cleaned up when the test completes.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// TestContext creates a test context with a 30-second timeout.
// The caller must call the returned cancel function to avoid leaks.
func TestContext(_ *testing.T) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// RoundTripRecords returns the three-player fixture used across packages:
// aaa01 (NYY, .300), bbb02 (NYY, .200) and ccc03 (BOS, .400).
func RoundTripRecords() []*models.Record {
	return []*models.Record{
		models.NewRecord("aaa01", "NYY", 100, 30, 12, 40, 10, 20),
		models.NewRecord("bbb02", "NYY", 200, 40, 3, 25, 15, 44),
		models.NewRecord("ccc03", "BOS", 50, 20, 7, 18, 4, 9),
	}
}

// RoundTripCSV is RoundTripRecords rendered as Batting.csv content.
func RoundTripCSV() string {
	return BattingCSV(
		"aaa01,2023,1,NYY,AL,30,100,15,30,5,0,12,40,1,0,10,20",
		"bbb02,2023,1,NYY,AL,60,200,20,40,8,1,3,25,0,1,15,44",
		"ccc03,2023,1,BOS,AL,20,50,9,20,4,0,7,18,2,0,4,9",
	)
}

// BattingCSV joins data rows under BattingHeader.
func BattingCSV(rows ...string) string {
	return BattingHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

// WriteFile writes content to name inside a per-test temporary directory
// and returns the full path.
func WriteFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// IDs extracts the player ids of records, in order.
func IDs(records []*models.Record) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

// Compress encodes content with alg, producing what compression.NewReader
// expects for that algorithm.
func Compress(t *testing.T, alg compression.Algorithm, content []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	var w io.WriteCloser
	switch alg {
	case compression.None:
		return append([]byte(nil), content...)
	case compression.Gzip:
		w = gzip.NewWriter(&buf)
	case compression.Zstd:
		enc, err := zstd.NewWriter(&buf)
		if err != nil {
			t.Fatalf("failed to create zstd writer: %v", err)
		}
		w = enc
	case compression.LZ4:
		w = lz4.NewWriter(&buf)
	default:
		t.Fatalf("unsupported compression algorithm: %s", alg)
	}

	if _, err := w.Write(content); err != nil {
		t.Fatalf("failed to compress with %s: %v", alg, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to flush %s writer: %v", alg, err)
	}
	return buf.Bytes()
}
