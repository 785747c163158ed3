package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/konstankino/nameit/formatter"
	"github.com/konstankino/nameit/internal"
	tt "github.com/konstankino/nameit/internal/types"
	"github.com/konstankino/nameit/lint"
	"github.com/konstankino/nameit/scanner"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Lint the given paths and lint files again whenever they change",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runWatch(ctx, logger, internal.NewEngine(), args, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func runWatch(
	ctx context.Context,
	logger *zap.Logger,
	engine *internal.Engine,
	paths []string,
	cfg lint.Config,
	out, errOut io.Writer,
) error {
	format, err := formatter.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	lintCtx, cancel := context.WithTimeout(ctx, timeout)
	err = runNormalLintProcess(lintCtx, logger, engine, paths, cfg, out, errOut, nil)
	cancel()
	if err != nil {
		return err
	}

	accept := func(path string) bool {
		return scanner.HasExtension(path, cfg.Extensions...)
	}
	onReport := func(r tt.FileReport) {
		if len(r.Findings) == 0 {
			logger.Info("No findings", zap.String("file", r.Filename))
			return
		}
		err := formatter.Write(out, []tt.FileReport{r}, formatter.Options{
			Format:       format,
			NameWidth:    cfg.NameWidth,
			ShowFilename: true,
		})
		if err != nil {
			logger.Error("Error writing report", zap.String("file", r.Filename), zap.Error(err))
		}
	}

	w, err := internal.NewWatcher(engine, logger, accept, onReport)
	if err != nil {
		return err
	}
	if err := w.Add(paths...); err != nil {
		_ = w.Close()
		return err
	}

	fmt.Fprintln(errOut, "Watching for changes. Press Ctrl+C to stop.")
	return w.Watch(ctx)
}
