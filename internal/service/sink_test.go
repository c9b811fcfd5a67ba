package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_Deliver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	sink := NewFileSink(dir)

	path, err := sink.Deliver(context.Background(), "note.docx", []byte("content"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "note.docx"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
	assert.Equal(t, []string{"note.docx"}, dirEntries(t, dir))
}

func TestFileSink_Overwrites(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	_, err := sink.Deliver(context.Background(), "a.pdf", []byte("first"))
	require.NoError(t, err)
	path, err := sink.Deliver(context.Background(), "a.pdf", []byte("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestFileSink_RejectsPaths(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	for _, name := range []string{"", "../escape.pdf", "sub/a.pdf"} {
		_, err := sink.Deliver(context.Background(), name, []byte("x"))
		assert.Error(t, err, name)
	}
	assert.Empty(t, dirEntries(t, dir))
}

func TestFileSink_Canceled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSink(dir).Deliver(ctx, "a.pdf", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dirEntries(t, dir))
}

func TestNewFileSink_DefaultsToWorkingDir(t *testing.T) {
	assert.Equal(t, ".", NewFileSink("").Dir)
}
