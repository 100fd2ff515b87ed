// Package pipeline implements the four stages of a textkit run: resolve the
// input, transform it, render it, write it. Each stage is a plain function
// with explicit error returns; the command layer maps error kinds to exit
// codes.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"textkit/internal/config"
)

// Sentinel errors for recognized input problems.
var (
	ErrInputNotFound   = errors.New("input file not found")
	ErrInvalidEncoding = errors.New("input file is not valid UTF-8")
)

// Resolve returns the raw text for the configured input source. Inline text
// passes through untouched. File sources are read whole, with strict UTF-8
// validation; there are no retries.
func Resolve(src config.Source) (string, error) {
	switch src.Kind {
	case config.SourceInline:
		return src.Text, nil
	case config.SourceFile:
		info, err := os.Stat(src.Path)
		if err != nil || info.IsDir() {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, src.Path)
		}
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", src.Path, err)
		}
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, src.Path)
		}
		return string(data), nil
	default:
		// Unreachable when the Source came from config.NewSource.
		return "", config.ErrNoInput
	}
}
