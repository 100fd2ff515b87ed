// Package config builds the immutable per-invocation configuration for the
// textkit and classify commands. Input-source exclusivity is rejected here,
// at construction time, so later stages never see an ambiguous source.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// LevelEnvVar supplies the default logging level when no flag or config-file
// value is given.
const LevelEnvVar = "APP_LOG_LEVEL"

// Sentinel errors for recognized user-input problems. Commands classify
// these with errors.Is to pick the exit code.
var (
	ErrNoInput       = errors.New("either --text or --file must be provided")
	ErrBothInputs    = errors.New("--text and --file are mutually exclusive")
	ErrBadLogLevel   = errors.New("invalid log level")
	ErrBadConfigFile = errors.New("unusable config file")
)

// SourceKind discriminates the two input origins.
type SourceKind int

const (
	// SourceInline carries the text directly from the command line.
	SourceInline SourceKind = iota
	// SourceFile names a file whose contents are the input.
	SourceFile
)

// Source is a two-case tagged union: inline text or a file path, never both.
// Construct via NewSource.
type Source struct {
	Kind SourceKind
	Text string // valid when Kind == SourceInline
	Path string // valid when Kind == SourceFile
}

// NewSource validates mutual exclusivity and presence of the input origin.
// The *Set booleans reflect whether the flag was given at all, so an
// explicit empty --text "" is still a valid inline source.
func NewSource(text string, textSet bool, path string, pathSet bool) (Source, error) {
	switch {
	case textSet && pathSet:
		return Source{}, ErrBothInputs
	case textSet:
		return Source{Kind: SourceInline, Text: text}, nil
	case pathSet:
		return Source{Kind: SourceFile, Path: path}, nil
	default:
		return Source{}, ErrNoInput
	}
}

// Config is the resolved invocation configuration. It is constructed once
// per run and never mutated.
type Config struct {
	Source     Source
	OutputPath string
	Uppercase  bool
	JSONOutput bool
	Level      zapcore.Level
	RunID      string
}

// ParseLevel maps a level name to a zap level, case-insensitively.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return zapcore.DebugLevel, nil
	case "INFO":
		return zapcore.InfoLevel, nil
	case "WARN", "WARNING":
		return zapcore.WarnLevel, nil
	case "ERROR":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrBadLogLevel, s)
	}
}

// ResolveLevel applies the level precedence: explicit flag, config-file
// default, APP_LOG_LEVEL, then INFO.
func ResolveLevel(flagValue string, flagSet bool, fileValue string) (zapcore.Level, error) {
	switch {
	case flagSet:
		return ParseLevel(flagValue)
	case fileValue != "":
		return ParseLevel(fileValue)
	default:
		if env := os.Getenv(LevelEnvVar); env != "" {
			return ParseLevel(env)
		}
		return zapcore.InfoLevel, nil
	}
}

// FileDefaults holds optional flag defaults loaded from a YAML file.
// Pointer fields distinguish "absent" from an explicit false.
type FileDefaults struct {
	Uppercase *bool  `yaml:"uppercase"`
	JSON      *bool  `yaml:"json"`
	Output    string `yaml:"output"`
	LogLevel  string `yaml:"log_level"`
}

// LoadDefaults reads flag defaults from a YAML file. Explicit flags always
// win over file values; the caller handles the merge.
func LoadDefaults(path string) (*FileDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadConfigFile, path)
	}
	var d FileDefaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadConfigFile, path, err)
	}
	return &d, nil
}
