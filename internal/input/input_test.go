package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scan = "498,4 -> 498,6 -> 496,6\n503,4 -> 502,4 -> 502,9 -> 494,9\n"

func writeZstd(t *testing.T, path, body string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	require.NoError(t, err)
	_, err = enc.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
}

func TestLoad_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "14.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.ReplaceAll(scan, "\n", "\r\n")), 0o600))

	got, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, scan, got)
}

func TestLoad_Zstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "14.txt.zst")
	writeZstd(t, path, scan)

	got, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, scan, got)
}

func TestLoad_CorruptZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "14.txt.zst")
	require.NoError(t, os.WriteFile(path, []byte("not zstd at all"), 0o600))

	_, err := Load(path, nil)
	assert.Error(t, err)
}

func TestLoad_Stdin(t *testing.T) {
	got, err := Load(Stdin, strings.NewReader(scan))
	require.NoError(t, err)
	assert.Equal(t, scan, got)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()

	_, err := Locate(dir, 14)
	assert.ErrorIs(t, err, ErrNotFound)

	writeZstd(t, filepath.Join(dir, "14.txt.zst"), scan)
	path, err := Locate(dir, 14)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "14.txt.zst"), path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "14.txt"), []byte(scan), 0o600))
	path, err = Locate(dir, 14)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "14.txt"), path, "plain file wins")
}
