package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/internal/config"
	"github.com/aretw0/jot/internal/logging"
	"github.com/aretw0/jot/internal/shell"
	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

var (
	verbose    bool
	configPath string
	formatName string
	filePath   string
	logFile    string

	// resolved in PersistentPreRunE
	settings  config.Config
	logCloser io.Closer = nopCloser{}

	setupLogging = logging.Setup
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "Keep short notes in a single JSON, CSV or YAML file",
	Long: `jot keeps titled notes in one flat file.
Run without a subcommand to start the interactive shell
(add/show/edit/delete/exit).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("format") {
			cfg.Format = formatName
		}
		if flags.Changed("file") {
			cfg.File = filePath
		}
		if flags.Changed("log-file") {
			cfg.LogFile = logFile
		}
		settings = cfg

		logger, closer := setupLogging(logging.SetupParams{
			Level:   cfg.LogLevel,
			Verbose: verbose,
			File:    cfg.LogFile,
			Stderr:  cmd.ErrOrStderr(),
		})
		logCloser = closer
		slog.SetDefault(logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager(cmd.Context())
		if err != nil {
			return err
		}
		return shell.New(mgr, cmd.InOrStdin(), cmd.OutOrStdout(), slog.Default()).Run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := run(); err != nil {
		fatal("Error", err)
	}
}

// run executes the root command and always releases the log sink,
// including when the command itself failed.
func run() error {
	err := rootCmd.Execute()
	closer := logCloser
	logCloser = nopCloser{}
	return multierr.Append(err, closer.Close())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "Settings file (TOML)")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "json", "Storage format: json, csv or yaml")
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "", "Backing file (default notes.<format>)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write rotated logs to this file instead of stderr")
}

// openManager builds and loads a Manager from the resolved settings.
func openManager(ctx context.Context) (*core.Manager, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := fs.ParseFormat(settings.Format)
	if err != nil {
		return nil, err
	}

	return jot.New(ctx,
		jot.WithFormat(format),
		jot.WithPath(settings.File),
		jot.WithLogger(slog.Default()),
	)
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
