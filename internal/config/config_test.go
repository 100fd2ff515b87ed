package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewSource(t *testing.T) {
	t.Run("inline text", func(t *testing.T) {
		src, err := NewSource("hello", true, "", false)
		require.NoError(t, err)
		assert.Equal(t, SourceInline, src.Kind)
		assert.Equal(t, "hello", src.Text)
	})

	t.Run("explicit empty text is still inline", func(t *testing.T) {
		src, err := NewSource("", true, "", false)
		require.NoError(t, err)
		assert.Equal(t, SourceInline, src.Kind)
	})

	t.Run("file path", func(t *testing.T) {
		src, err := NewSource("", false, "input.txt", true)
		require.NoError(t, err)
		assert.Equal(t, SourceFile, src.Kind)
		assert.Equal(t, "input.txt", src.Path)
	})

	t.Run("both rejected", func(t *testing.T) {
		_, err := NewSource("hello", true, "input.txt", true)
		assert.ErrorIs(t, err, ErrBothInputs)
	})

	t.Run("neither rejected", func(t *testing.T) {
		_, err := NewSource("", false, "", false)
		assert.ErrorIs(t, err, ErrNoInput)
	})
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"info", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{"WARNING", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{" error ", zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, "level %q", tc.in)
		assert.Equal(t, tc.want, got, "level %q", tc.in)
	}

	_, err := ParseLevel("LOUD")
	require.ErrorIs(t, err, ErrBadLogLevel)
	assert.Contains(t, err.Error(), "LOUD")
}

func TestResolveLevelPrecedence(t *testing.T) {
	t.Run("flag wins over file and env", func(t *testing.T) {
		t.Setenv(LevelEnvVar, "ERROR")
		got, err := ResolveLevel("DEBUG", true, "WARN")
		require.NoError(t, err)
		assert.Equal(t, zapcore.DebugLevel, got)
	})

	t.Run("file wins over env", func(t *testing.T) {
		t.Setenv(LevelEnvVar, "ERROR")
		got, err := ResolveLevel("INFO", false, "WARN")
		require.NoError(t, err)
		assert.Equal(t, zapcore.WarnLevel, got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(LevelEnvVar, "ERROR")
		got, err := ResolveLevel("INFO", false, "")
		require.NoError(t, err)
		assert.Equal(t, zapcore.ErrorLevel, got)
	})

	t.Run("default is INFO", func(t *testing.T) {
		t.Setenv(LevelEnvVar, "")
		os.Unsetenv(LevelEnvVar)
		got, err := ResolveLevel("INFO", false, "")
		require.NoError(t, err)
		assert.Equal(t, zapcore.InfoLevel, got)
	})

	t.Run("junk env is an error", func(t *testing.T) {
		t.Setenv(LevelEnvVar, "LOUD")
		_, err := ResolveLevel("INFO", false, "")
		assert.ErrorIs(t, err, ErrBadLogLevel)
	})
}

func TestLoadDefaults(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "defaults.yaml")
		content := "uppercase: true\njson: false\noutput: out.txt\nlog_level: DEBUG\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		d, err := LoadDefaults(path)
		require.NoError(t, err)
		require.NotNil(t, d.Uppercase)
		assert.True(t, *d.Uppercase)
		require.NotNil(t, d.JSON)
		assert.False(t, *d.JSON)
		assert.Equal(t, "out.txt", d.Output)
		assert.Equal(t, "DEBUG", d.LogLevel)
	})

	t.Run("absent keys stay nil", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "defaults.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: out.txt\n"), 0o644))

		d, err := LoadDefaults(path)
		require.NoError(t, err)
		assert.Nil(t, d.Uppercase)
		assert.Nil(t, d.JSON)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.yaml")
		_, err := LoadDefaults(path)
		require.ErrorIs(t, err, ErrBadConfigFile)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("uppercase: [unclosed\n"), 0o644))

		_, err := LoadDefaults(path)
		assert.ErrorIs(t, err, ErrBadConfigFile)
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNoInput, ErrBothInputs, ErrBadLogLevel, ErrBadConfigFile}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b))
		}
	}
}
