package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.grib")
	require.NoError(t, os.WriteFile(path, []byte("GRIB-ish contents"), 0o644))

	blob, err := OpenFile(path)
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(17), blob.Size())

	p := make([]byte, 4)
	n, err := blob.ReadAt(p, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "GRIB", string(p))

	// Short read at the tail reports EOF.
	n, err = blob.ReadAt(p, blob.Size()-2)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, io.EOF)

	data, err := Bytes(blob)
	require.NoError(t, err)
	assert.Equal(t, "GRIB-ish contents", string(data))
}

func TestOpenFileNotFound(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "nope.grib"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.grib"), []byte("abc"), 0o644))

	store := NewLocalStore(dir)
	blob, err := store.Open(context.Background(), "a.grib")
	require.NoError(t, err)
	defer blob.Close()
	assert.Equal(t, int64(3), blob.Size())

	_, err = store.Open(context.Background(), "missing.grib")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	store.Put("obj", []byte("hello"))

	blob, err := store.Open(context.Background(), "obj")
	require.NoError(t, err)
	defer blob.Close()

	data, err := Bytes(blob)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = store.Open(context.Background(), "other")
	assert.True(t, errors.Is(err, ErrNotFound))
}
