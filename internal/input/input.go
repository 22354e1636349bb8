// Package input reads puzzle input from a file, a zstd-compressed file or
// standard input.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrNotFound is returned by Locate when no input file exists for a day.
var ErrNotFound = errors.New("input: no input file found")

// Load returns the text at path with CRLF line endings normalized.
// Paths ending in ".zst" are decompressed; Stdin reads from stdin.
func Load(path string, stdin io.Reader) (string, error) {
	var r io.Reader
	switch {
	case path == Stdin:
		r = stdin
	default:
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f

		if strings.HasSuffix(path, ".zst") {
			dec, err := zstd.NewReader(f)
			if err != nil {
				return "", fmt.Errorf("input: %s: %w", path, err)
			}
			defer dec.Close()
			r = dec
		}
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("input: read %s: %w", path, err)
	}
	return strings.ReplaceAll(string(raw), "\r\n", "\n"), nil
}

// Locate returns dir/DD.txt, or dir/DD.txt.zst when only the compressed
// form exists.
func Locate(dir string, day int) (string, error) {
	base := filepath.Join(dir, fmt.Sprintf("%02d.txt", day))
	for _, path := range []string{base, base + ".zst"} {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s[.zst]", ErrNotFound, base)
}
