// Command classify returns a classification result for a text argument.
// The current model is a placeholder: every input is labeled "unknown" with
// confidence 0.0.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"textkit/internal/classify"
	"textkit/internal/config"
	"textkit/internal/logging"
)

const appName = "classify"

type options struct {
	format   string
	logLevel string
}

func newClassifyCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   appName + " [text]",
		Short: "Classify a piece of text (placeholder model)",
		Long: `classify assigns a label and confidence to the given text.

The shipped model is a stub: it labels every input "unknown" with
confidence 0.0 and echoes the input back. The output shape is stable so
callers can integrate against it before a real model lands.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.format, "format", "json", "Output format: json or text")
	flags.StringVar(&opts.logLevel, "log-level", "INFO", "Logging level (env "+config.LevelEnvVar+")")
	return cmd
}

func runClassify(cmd *cobra.Command, opts *options, text string) error {
	level, err := config.ResolveLevel(opts.logLevel, cmd.Flags().Changed("log-level"), "")
	if err != nil {
		return err
	}
	logger, err := logging.New(level, logging.NewRunID())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting", zap.String("app", appName))

	if opts.format != "json" && opts.format != "text" {
		return fmt.Errorf("unknown format %q (want json or text)", opts.format)
	}

	res, err := classify.NewPlaceholder().Classify(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	var out string
	if opts.format == "text" {
		out = classify.FormatText(res)
	} else {
		out, err = classify.FormatJSON(res)
		if err != nil {
			return fmt.Errorf("render result: %w", err)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	logger.Info("completed", zap.String("label", res.Label))
	return nil
}

// run executes the command. Any failure exits 1; there is no separate
// user-error code for this tool.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // nil would make cobra re-read os.Args
	}
	cmd := newClassifyCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
