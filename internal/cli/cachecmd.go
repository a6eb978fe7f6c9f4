package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/plexkit/seasonsort/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the TVDB lookup cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache entry counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCache()
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats()
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", StyleHeader.Render("Lookup cache"))
		fmt.Printf(" %s entries: %d\n", StyleDim.Render("-"), stats.TotalEntries)
		fmt.Printf(" %s expired: %d\n", StyleDim.Render("-"), stats.ExpiredEntries)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached lookups",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCache()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(); err != nil {
			return err
		}
		logger.Info("Cache cleared")
		return nil
	},
}

var cacheCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove expired cached lookups",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCache()
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.CleanupExpired()
		if err != nil {
			return err
		}
		logger.Info(fmt.Sprintf("Removed %d expired entr(ies)", removed))
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd, cacheCleanupCmd)
	RootCmd.AddCommand(cacheCmd)
}

func openCache() (*cache.Cache, error) {
	path, err := cachePath()
	if err != nil {
		return nil, err
	}
	cfg := loadConfig()
	return cache.Open(path, time.Duration(cfg.Cache.TTLDays)*24*time.Hour)
}
