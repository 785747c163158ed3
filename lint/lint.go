package lint

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/konstankino/nameit/internal"
	tt "github.com/konstankino/nameit/internal/types"
	"github.com/konstankino/nameit/scanner"
)

type LintEngine interface {
	Run(filePath string) ([]tt.Finding, error)
	RunSource(source []byte) []tt.Finding
}

// New returns an engine with the built-in recommenders.
func New() *internal.Engine {
	return internal.NewEngine()
}

// ProcessOptions controls how paths are expanded and processed.
type ProcessOptions struct {
	// Extensions filters the files found under directories.
	// Files given explicitly are always linted.
	Extensions []string

	// Progress receives a progress bar while a directory is linted. Nil disables it.
	Progress io.Writer
}

// Failure records a path that could not be linted.
type Failure struct {
	Path string
	Err  error
}

// Result collects the reports of every linted file and the paths that failed.
type Result struct {
	Reports  []tt.FileReport
	Failures []Failure
}

func (r *Result) merge(other Result) {
	r.Reports = append(r.Reports, other.Reports...)
	r.Failures = append(r.Failures, other.Failures...)
}

// FindingCount returns the number of findings over all reports.
func (r Result) FindingCount() int {
	n := 0
	for _, report := range r.Reports {
		n += len(report.Findings)
	}
	return n
}

type Processor func(LintEngine, string) ([]tt.Finding, error)

// ProcessFiles lints every path in order. Unreadable paths are recorded as
// failures and do not stop processing; only context cancellation does.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	opts ProcessOptions,
	processor Processor,
) (Result, error) {
	var result Result
	for _, path := range paths {
		r, err := ProcessPath(ctx, logger, engine, path, opts, processor)
		result.merge(r)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return result, err
		}
	}

	return result, nil
}

// ProcessPath lints a single file, or every matching file below a directory.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	opts ProcessOptions,
	processor Processor,
) (Result, error) {
	var result Result

	if err := ctx.Err(); err != nil {
		return result, err
	}

	info, err := os.Stat(path)
	if err != nil {
		result.Failures = append(result.Failures, Failure{
			Path: path,
			Err:  fmt.Errorf("%w: %w", internal.ErrInputUnavailable, err),
		})
		return result, nil
	}

	if !info.IsDir() {
		result.merge(processOne(logger, engine, path, processor))
		return result, nil
	}

	files, err := scanner.New(path, opts.Extensions...).Scan()
	if err != nil {
		result.Failures = append(result.Failures, Failure{
			Path: path,
			Err:  fmt.Errorf("error walking directory %s: %w", path, err),
		})
		return result, nil
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = newProgressBar(opts.Progress, path, len(files))
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.merge(processOne(logger, engine, file.Path, processor))
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return result, nil
}

func processOne(logger *zap.Logger, engine LintEngine, path string, processor Processor) Result {
	findings, err := processor(engine, path)
	if err != nil {
		if logger != nil {
			logger.Debug("Error processing file", zap.String("file", path), zap.Error(err))
		}
		return Result{Failures: []Failure{{Path: path, Err: err}}}
	}
	if logger != nil {
		logger.Debug("Processed file", zap.String("file", path), zap.Int("findings", len(findings)))
	}
	return Result{Reports: []tt.FileReport{{Filename: path, Findings: findings}}}
}

func newProgressBar(w io.Writer, description string, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func ProcessFile(engine LintEngine, filePath string) ([]tt.Finding, error) {
	return engine.Run(filePath)
}

func ProcessSource(engine LintEngine, source []byte) []tt.Finding {
	return engine.RunSource(source)
}
