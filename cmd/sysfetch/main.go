package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/monify-labs/sysfetch/internal/app"
	"github.com/monify-labs/sysfetch/internal/config"
	"github.com/monify-labs/sysfetch/internal/metrics"
	"github.com/monify-labs/sysfetch/internal/resolve"
)

type options struct {
	configPath string
	logo       string
	offset     int
	debug      bool
	noColor    bool
	offline    bool
	all        bool
}

func main() {
	log := newLogger()

	// Load environment files before flags read their defaults
	if err := config.LoadEnvFile(); err != nil {
		log.WithError(err).Warn("Failed to load env file")
	}

	cmd, err := newRootCmd(log).ExecuteC()
	os.Exit(exitCode(cmd, err, log))
}

// exitCode keeps the render path at 0; only subcommands report failure
func exitCode(cmd *cobra.Command, err error, log logrus.FieldLogger) int {
	if err == nil {
		return 0
	}
	if cmd == nil || !cmd.HasParent() {
		log.WithError(err).Debug("Render command rejected its arguments")
		return 0
	}
	return 1
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(logrus.InfoLevel)
	return log
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          config.AppName,
		Short:        "Show a summary of this machine next to a logo",
		Version:      config.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug || config.IsDebugMode() {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg := loadConfig(cmd, opts, log)
			table := resolve.NewTable(resolve.CurrentPlatform(), resolve.Options{
				Executor: metrics.NewExecutor(),
				Offline:  cfg.Offline,
			})
			log.WithField("providers", table.Names()).Debug("Provider table")

			// Rendering never fails the process; sink errors are only reported
			if err := app.New(cfg, table, cmd.OutOrStdout(), log).Run(ctx); err != nil {
				log.WithError(err).Warn("Output was incomplete")
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file path (default "+config.DefaultPath()+")")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	local := root.Flags()
	local.StringVarP(&opts.logo, "logo", "l", "", "logo to draw (windows, windows-compact, tux, apple, auto)")
	local.IntVarP(&opts.offset, "offset", "o", 0, "rows to shift the facts down beside the logo")
	local.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	local.BoolVar(&opts.offline, "offline", false, "skip facts that need the network")
	local.BoolVarP(&opts.all, "all", "a", false, "show every category regardless of the config file")

	root.AddCommand(
		newInitCmd(opts),
		newCategoriesCmd(opts, log),
		newVersionCmd(),
	)
	return root
}

func (o *options) path() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.DefaultPath()
}

// loadConfig reads the config file and applies flag and environment overrides
func loadConfig(cmd *cobra.Command, opts *options, log logrus.FieldLogger) *config.Config {
	cfg := app.LoadConfig(opts.path(), log)

	if opts.all {
		enabled := config.AllEnabled()
		cfg.Categories = enabled.Categories
	}
	if opts.logo != "" {
		cfg.ImageName = opts.logo
	}
	if cmd.Flags().Changed("offset") {
		if opts.offset < 0 {
			log.WithField("offset", opts.offset).Warn("Negative offset ignored")
		} else {
			cfg.InfoOffset = opts.offset
		}
	}
	if opts.noColor || os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	if opts.offline || config.IsOffline() {
		cfg.Offline = true
	}
	return cfg
}
