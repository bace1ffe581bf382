package compression_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/slugger/pkg/compression"
	tu "github.com/ajitpratap0/slugger/pkg/testutil"
)

func TestDetectAlgorithm(t *testing.T) {
	tests := map[string]compression.Algorithm{
		"Batting.csv":         compression.None,
		"Batting.csv.gz":      compression.Gzip,
		"data/Batting.CSV.GZ": compression.Gzip,
		"Batting.csv.zst":     compression.Zstd,
		"Batting.csv.lz4":     compression.LZ4,
		"Batting":             compression.None,
	}
	for path, want := range tests {
		assert.Equal(t, want, compression.DetectAlgorithm(path), path)
	}
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := compression.ParseAlgorithm("auto", "x.csv.zst")
	require.NoError(t, err)
	assert.Equal(t, compression.Zstd, alg)

	alg, err = compression.ParseAlgorithm("", "x.csv")
	require.NoError(t, err)
	assert.Equal(t, compression.None, alg)

	alg, err = compression.ParseAlgorithm("LZ4", "x.csv")
	require.NoError(t, err)
	assert.Equal(t, compression.LZ4, alg)

	_, err = compression.ParseAlgorithm("snappy", "x.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported compression algorithm")
}

// TestNewReader_RoundTrip decodes a CSV body encoded with each algorithm.
func TestNewReader_RoundTrip(t *testing.T) {
	body := "playerID,teamID,AB,H\n" + strings.Repeat("aaa01,NYY,100,30\n", 200)

	for _, alg := range []compression.Algorithm{compression.None, compression.Gzip, compression.Zstd, compression.LZ4} {
		t.Run(string(alg), func(t *testing.T) {
			encoded := tu.Compress(t, alg, []byte(body))
			if alg != compression.None {
				assert.Less(t, len(encoded), len(body))
			}

			r, err := compression.NewReader(bytes.NewReader(encoded), alg)
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, body, string(got))
		})
	}
}

func TestNewReader_CorruptGzip(t *testing.T) {
	_, err := compression.NewReader(strings.NewReader("not gzip at all"), compression.Gzip)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gzip")
}

func TestUnsupportedAlgorithm(t *testing.T) {
	_, err := compression.NewReader(strings.NewReader(""), compression.Algorithm("brotli"))
	assert.Error(t, err)
}
