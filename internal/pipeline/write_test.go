package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteToStdout(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write("rendered", "", &out, zap.NewNop()))
	assert.Equal(t, "rendered\n", out.String())
}

func TestWriteToFile(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, Write("rendered", path, &out, zap.NewNop()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// File output carries no trailing newline; only stdout does.
	assert.Equal(t, "rendered", string(data))
	assert.Empty(t, out.String())
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous much longer contents"), 0o644))

	require.NoError(t, Write("new", path, &bytes.Buffer{}, zap.NewNop()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFailurePropagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.txt")
	err := Write("x", path, &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
