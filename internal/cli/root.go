// Package cli wires the esiutil commands.
package cli

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lefs/esi-util/internal/config"
	"github.com/lefs/esi-util/internal/model"
	"github.com/lefs/esi-util/internal/parser"
)

type rootOptions struct {
	dataDir      string
	esiFilename  string
	esiSheetName string

	cfg *config.AppConfig
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the esiutil command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "esiutil",
		Short:         "Rank and chart the Economic Sentiment Indicator",
		Long:          "esiutil ranks European countries and aggregates by the published Economic Sentiment Indicator and renders historical trend charts from the main_indicators_nace2.xlsx workbook.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.cfg = resolveConfig(opts)
			configureLogger(opts.cfg.App.LogLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "",
		"directory holding the ESI workbook (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.esiFilename, "esi-filename", "",
		"ESI workbook filename (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.esiSheetName, "esi-sheet-name", "",
		"workbook sheet to read (overrides config)")

	cmd.AddCommand(newLatestRankingsCommand(opts))
	for _, def := range chartCommands {
		cmd.AddCommand(newChartCommand(opts, def))
	}

	return cmd
}

// resolveConfig loads config.toml and applies flag overrides on top, the
// same precedence the flags document.
func resolveConfig(opts *rootOptions) *config.AppConfig {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Warnf("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	if opts.dataDir != "" {
		cfg.Data.DataDir = opts.dataDir
	}
	if opts.esiFilename != "" {
		cfg.Data.ESIFilename = opts.esiFilename
	}
	if opts.esiSheetName != "" {
		cfg.Data.ESISheetName = opts.esiSheetName
	}
	return cfg
}

func configureLogger(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func loadTable(opts *rootOptions) (*model.IndicatorTable, error) {
	cfg := opts.cfg.Data
	return parser.NewLoader().Load(cfg.DataDir, cfg.ESIFilename, cfg.ESISheetName)
}
