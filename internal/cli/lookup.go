package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/plexkit/seasonsort/internal/cache"
	"github.com/plexkit/seasonsort/internal/creds"
	"github.com/plexkit/seasonsort/internal/showname"
	"github.com/plexkit/seasonsort/internal/tvdb"
)

var flagAPIKey string

var lookupCmd = &cobra.Command{
	Use:   "lookup <show name>",
	Short: "Look up a show on TVDB",
	Long: "Searches TVDB for the given show and prints the best match with its\n" +
		"first-aired year. Results are cached; repeated lookups don't hit the\n" +
		"network. Needs a TVDB_API_KEY (flag, environment or .env file).",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, args[0])
	},
}

func init() {
	lookupCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "TVDB API key")
	RootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, name string) error {
	apiKey, err := creds.NewResolver().Require("TVDB_API_KEY", flagAPIKey)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	opts := []tvdb.Option{
		tvdb.WithBaseURL(cfg.API.BaseURL),
		tvdb.WithRateLimit(cfg.API.RateLimit),
	}

	path, err := cachePath()
	if err == nil {
		store, cerr := cache.Open(path, time.Duration(cfg.Cache.TTLDays)*24*time.Hour)
		if cerr != nil {
			logger.Warn("lookup cache unavailable", "err", cerr)
		} else {
			defer store.Close()
			opts = append(opts, tvdb.WithCache(store))
		}
	}

	client := tvdb.NewClient(apiKey, opts...)
	defer client.Close()

	query := showname.CleanName(name)
	series, err := client.SearchSeries(cmd.Context(), query)
	if err != nil {
		return err
	}
	if series == nil {
		fmt.Printf("No results for: %s\n", StylePath.Render(query))
		return nil
	}

	fmt.Printf("%s %s %s\n",
		StyleHeader.Render(series.Name),
		StyleSeason.Render("("+series.Year+")"),
		StyleDim.Render("tvdb:"+series.TVDBID),
	)
	if year, ok := showname.ExtractYear(name); ok {
		if fmt.Sprint(year) != series.Year {
			logger.Warn(fmt.Sprintf("name carries year %d but TVDB says %s", year, series.Year))
		}
	}

	stats := client.Statistics()
	logger.Debug("lookup finished", "cache_hits", stats.CacheHits, "cache_misses", stats.CacheMisses)
	return nil
}
