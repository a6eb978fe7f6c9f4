package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plexkit/seasonsort/internal/season"
)

var detectCmd = &cobra.Command{
	Use:   "detect <filename>...",
	Short: "Show which season would be detected for each filename",
	Long: "Runs season detection on the given filenames without touching any\n" +
		"files. Useful for checking how a name will be classified.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		det := season.NewDetector()
		for _, name := range args {
			res := det.Extract(name)
			if !res.Found {
				fmt.Printf("%s: %s\n", StylePath.Render(name), StyleDim.Render("no season detected"))
				continue
			}
			fmt.Printf("%s: %s %s %s\n",
				StylePath.Render(name),
				StyleSeason.Render(season.DirName(res.Season, res.Class)),
				StylePattern.Render(res.Description),
				StyleDim.Render("matched "+res.MatchedText),
			)
		}
	},
}

func init() {
	RootCmd.AddCommand(detectCmd)
}
