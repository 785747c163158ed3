package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/konstankino/nameit/lint"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	cfg    = lint.DefaultConfig()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:               "nameit [paths...]",
	Short:             "nameit - linter for your variables and constants",
	Version:           "0.1.0",
	TraverseChildren:  true, // Prioritize subcommands
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'nameit' is entered
			return cmd.Help()
		}
		// Format: nameit [path1 path2 ...] => behaves like the lint subcommand
		return runLint(cmd, args)
	},
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file (default "+lint.DefaultConfigFile+")")
	flags.DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for the linter")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.String("format", "text", "Output format: text, json, table")
	flags.Int("name-width", 25, "Display width of the variable name column")
	flags.StringSlice("extensions", lint.DefaultExtensions, "File extensions linted inside directories")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(watchCmd)
}

// setup loads the configuration and builds the logger for every command.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := lint.LoadConfig(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	cfg = loaded

	l, err := newLogger(cfg.LogLevel, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}
