// Command textkit reads text from a flag or a file, applies a trim plus
// optional uppercase transform, and emits the result as plain text or a
// JSON envelope, to stdout or a file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"textkit/internal/config"
	"textkit/internal/logging"
	"textkit/internal/pipeline"
)

const appName = "textkit"

// Exit codes: 0 success, 2 recognized user-input error, 1 anything else.
const (
	exitOK   = 0
	exitErr  = 1
	exitUser = 2
)

// errUsage marks argument-surface errors (unknown flags, stray positionals)
// so they exit like other user-input errors.
var errUsage = errors.New("invalid arguments")

// logger is set by runPipeline once the level is resolved; run uses it for
// unexpected-error diagnostics when available.
var logger *zap.Logger

type options struct {
	text       string
	file       string
	output     string
	uppercase  bool
	jsonOut    bool
	logLevel   string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Process text from a flag or file and emit it as text or JSON",
		Long: `textkit is a small, predictable text-processing CLI.

It reads input from --text or --file (exactly one), trims surrounding
whitespace, optionally upper-cases the result, and writes it to stdout or
--output as plain text or a JSON envelope.

Examples:
  textkit --text "hello world"
  textkit --file input.txt --output out.txt
  textkit --text "hello" --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected arguments %v", errUsage, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.text, "text", "", "Inline text to process")
	flags.StringVar(&opts.file, "file", "", "Path to a text file to process")
	flags.StringVar(&opts.output, "output", "", "Write output to a file instead of stdout")
	flags.BoolVar(&opts.uppercase, "uppercase", false, "Transform text to uppercase")
	flags.BoolVar(&opts.jsonOut, "json", false, "Emit a JSON object with metadata")
	flags.StringVar(&opts.logLevel, "log-level", "INFO", "Logging level (env "+config.LevelEnvVar+")")
	flags.StringVar(&opts.configPath, "config", "", "Optional YAML file with flag defaults")
	return cmd
}

// runPipeline is the single linear call chain of one invocation:
// resolve -> transform -> render -> write.
func runPipeline(cmd *cobra.Command, opts *options) error {
	flags := cmd.Flags()

	var defaults *config.FileDefaults
	if opts.configPath != "" {
		var err error
		defaults, err = config.LoadDefaults(opts.configPath)
		if err != nil {
			return err
		}
	}
	fileLevel := ""
	if defaults != nil {
		if defaults.Uppercase != nil && !flags.Changed("uppercase") {
			opts.uppercase = *defaults.Uppercase
		}
		if defaults.JSON != nil && !flags.Changed("json") {
			opts.jsonOut = *defaults.JSON
		}
		if defaults.Output != "" && !flags.Changed("output") {
			opts.output = defaults.Output
		}
		fileLevel = defaults.LogLevel
	}

	level, err := config.ResolveLevel(opts.logLevel, flags.Changed("log-level"), fileLevel)
	if err != nil {
		return err
	}
	src, err := config.NewSource(opts.text, flags.Changed("text"), opts.file, flags.Changed("file"))
	if err != nil {
		return err
	}
	cfg := config.Config{
		Source:     src,
		OutputPath: opts.output,
		Uppercase:  opts.uppercase,
		JSONOutput: opts.jsonOut,
		Level:      level,
		RunID:      logging.NewRunID(),
	}

	logger, err = logging.New(cfg.Level, cfg.RunID)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting", zap.String("app", appName))

	raw, err := pipeline.Resolve(cfg.Source)
	if err != nil {
		return err
	}
	processed := pipeline.Transform(raw, cfg.Uppercase)
	rendered, err := pipeline.Render(processed, cfg.JSONOutput, appName, time.Now())
	if err != nil {
		return err
	}
	if err := pipeline.Write(rendered, cfg.OutputPath, cmd.OutOrStdout(), logger); err != nil {
		return err
	}

	logger.Info("completed successfully")
	return nil
}

// isUserError reports whether err is a recognized user-input problem, as
// opposed to a defect or environmental failure.
func isUserError(err error) bool {
	for _, kind := range []error{
		errUsage,
		config.ErrNoInput,
		config.ErrBothInputs,
		config.ErrBadLogLevel,
		config.ErrBadConfigFile,
		pipeline.ErrInputNotFound,
		pipeline.ErrInvalidEncoding,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// run is the top-level dispatcher: it executes the command and maps the
// error kind to an exit code and a one-line message.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // nil would make cobra re-read os.Args
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	if isUserError(err) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUser
	}
	if logger != nil {
		logger.Error("unexpected error", zap.Error(err))
		_ = logger.Sync()
	}
	fmt.Fprintf(stderr, "Unexpected error: %v\n", err)
	return exitErr
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
