package pipeline

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Write delivers the rendered string to its single destination: the given
// file (truncated) or stdout with a trailing newline. A write failure
// propagates to the caller; there is no partial-write recovery.
func Write(rendered, path string, stdout io.Writer, logger *zap.Logger) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, rendered)
		return err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Info("wrote output", zap.String("path", path))
	return nil
}
