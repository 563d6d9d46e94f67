package digest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// File is an open digest file, transparently decompressed when gzipped.
type File struct {
	*Reader
	f   *os.File
	zpr *pgzip.Reader
}

// Open opens path for reading. Paths ending in ".gz" are decompressed.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	df := &File{f: f}

	var in io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		zpr, err := pgzip.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create decompressor on '%s': %w", path, err)
		}
		df.zpr = zpr
		in = zpr
	}

	df.Reader = NewReader(in)
	return df, nil
}

// Close releases the decompressor and the underlying file
func (df *File) Close() error {
	if df.zpr != nil {
		df.zpr.Close()
	}
	return df.f.Close()
}
