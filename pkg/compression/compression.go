// Package compression opens compressed batting files for streaming reads.
// Gzip and Zstd come from klauspost/compress, LZ4 from pierrec/lz4.
//
// # Algorithm Selection
//
// The algorithm is normally detected from the file extension:
//
//	.gz   Gzip
//	.zst  Zstd
//	.lz4  LZ4
//
// Anything else is read as plain text.
//
// # Basic Usage
//
//	f, _ := os.Open("Batting.csv.zst")
//	r, err := compression.NewReader(f, compression.DetectAlgorithm(f.Name()))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
package compression

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm represents a compression algorithm.
type Algorithm string

const (
	// None represents no compression
	None Algorithm = "none"
	// Gzip represents gzip compression
	Gzip Algorithm = "gzip"
	// Zstd represents zstandard compression
	Zstd Algorithm = "zstd"
	// LZ4 represents lz4 frame compression
	LZ4 Algorithm = "lz4"
)

var extensions = map[string]Algorithm{
	".gz":   Gzip,
	".gzip": Gzip,
	".zst":  Zstd,
	".zstd": Zstd,
	".lz4":  LZ4,
}

// DetectAlgorithm picks an algorithm from the file extension of path.
func DetectAlgorithm(path string) Algorithm {
	if alg, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return alg
	}
	return None
}

// ParseAlgorithm resolves a configured algorithm name. "auto" and the empty
// string resolve by extension of path.
func ParseAlgorithm(name, path string) (Algorithm, error) {
	switch alg := Algorithm(strings.ToLower(strings.TrimSpace(name))); alg {
	case "", "auto":
		return DetectAlgorithm(path), nil
	case None, Gzip, Zstd, LZ4:
		return alg, nil
	default:
		return "", fmt.Errorf("unsupported compression algorithm: %s", name)
	}
}

// NewReader wraps r with a decompressor for alg. Closing the returned reader
// releases the decompressor but does not close r.
func NewReader(r io.Reader, alg Algorithm) (io.ReadCloser, error) {
	switch alg {
	case None, "":
		return io.NopCloser(r), nil
	case Gzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gz, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %s", alg)
	}
}
