package main

import (
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"pointerrss/internal/app"
	"pointerrss/internal/config"
	"pointerrss/internal/logger"

	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logLevel   string
}

// newRootCmd создает корневую команду. Без подкоманд она строит ленту
// один раз и пишет RSS-документ в out.
func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "pointerrss",
		Short: "Build an RSS 2.0 feed from the pointer.io archives page",
		Long: `pointerrss scrapes https://www.pointer.io/archives/ and writes an RSS 2.0
document to standard output. Diagnostics go to standard error.

Example usage:
  pointerrss > pointer.xml
  LOG_LEVEL=debug pointerrss
  pointerrss serve --config config.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, closeLog, err := setup(opts)
			if err != nil {
				return err
			}
			defer closeLog()
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.WriteFeed(ctx, cfg, log, out)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to JSON config file (optional)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")

	root.AddCommand(newServeCmd(opts), newVersionCmd(out))
	return root
}

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the feed over HTTP and rebuild it periodically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, closeLog, err := setup(opts)
			if err != nil {
				return err
			}
			defer closeLog()
			a, err := app.New(cfg, log)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.Run(ctx)
		},
	}
}

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(out, "pointerrss", version)
		},
	}
}

// setup загружает конфигурацию и настраивает логгер.
// Возвращаемую функцию closeLog нужно вызвать перед выходом.
func setup(opts *options) (*config.Config, *slog.Logger, func() error, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Logger.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	appLogger, closeLog, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not setup logger: %w", err)
	}
	slog.SetDefault(appLogger)
	return cfg, appLogger, closeLog, nil
}
