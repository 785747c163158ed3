package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/konstankino/nameit/formatter"
	"github.com/konstankino/nameit/lint"
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint the variable and constant names in the given files",
	Long: `Extracts let, var, const and plain assignments from each file and reports
names that break the naming conventions.

Directories are walked and the files matching --extensions are linted.
A file that cannot be read is reported and skipped; the exit code stays 0.`,
	Example: `  nameit lint app.js
  nameit lint --format json src/`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLint(cmd, args)
	},
}

func runLint(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var progress io.Writer
	if isatty.IsTerminal(os.Stderr.Fd()) {
		progress = os.Stderr
	}

	engine := lint.New()
	return runNormalLintProcess(ctx, logger, engine, args, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), progress)
}

func runNormalLintProcess(
	ctx context.Context,
	logger *zap.Logger,
	engine lint.LintEngine,
	paths []string,
	cfg lint.Config,
	out, errOut io.Writer,
	progress io.Writer,
) error {
	format, err := formatter.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	result, err := lint.ProcessFiles(ctx, logger, engine, paths, lint.ProcessOptions{
		Extensions: cfg.Extensions,
		Progress:   progress,
	}, lint.ProcessFile)

	// keep machine readable output clean
	failureOut := out
	if format != formatter.FormatText {
		failureOut = errOut
	}
	for _, failure := range result.Failures {
		fmt.Fprintf(failureOut, "Unable to process. Error: %v\n", failure.Err)
	}

	if err != nil {
		return fmt.Errorf("linting stopped: %w", err)
	}

	if err := formatter.Write(out, result.Reports, formatter.Options{
		Format:    format,
		NameWidth: cfg.NameWidth,
	}); err != nil {
		return err
	}

	logger.Info("Lint finished",
		zap.Int("files", len(result.Reports)),
		zap.Int("findings", result.FindingCount()),
		zap.Int("failures", len(result.Failures)))
	return nil
}
