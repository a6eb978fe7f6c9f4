// Package cli wires the seasonsort commands: organize, detect, lookup and
// cache maintenance.
package cli

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plexkit/seasonsort/internal/config"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

var (
	flagDebug  bool
	flagQuiet  bool
	flagDryRun bool
	flagYes    bool
)

// RootCmd is the seasonsort entry point.
var RootCmd = &cobra.Command{
	Use:   "seasonsort",
	Short: "Organize TV episode files into season directories",
	Long: "seasonsort detects season numbers in media filenames and moves the\n" +
		"files into Season NN directories. It understands S01E01 markers,\n" +
		"season words, 3x05 notation, years and bare episode numbers.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
		if flagQuiet {
			logger.SetLevel(log.ErrorLevel)
		}
		configureStyles()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	RootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only log errors")
}

// Execute runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// loadConfig reads the global config, logging but not failing on problems.
func loadConfig() config.GlobalConfig {
	dir, err := config.Dir()
	if err != nil {
		logger.Debug("no config directory", "err", err)
		return config.Defaults()
	}
	cfg, err := config.Load(filepath.Join(dir, "config.yml"))
	if err != nil {
		logger.Warn("ignoring unreadable config", "err", err)
		return config.Defaults()
	}
	return cfg
}

// cachePath returns the lookup cache location inside the config directory.
func cachePath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "api_cache.db"), nil
}
