package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/plexkit/seasonsort/internal/organize"
	"github.com/plexkit/seasonsort/internal/scan"
	"github.com/plexkit/seasonsort/internal/season"
	"github.com/plexkit/seasonsort/internal/showname"
	"github.com/plexkit/seasonsort/internal/tagger"
)

var (
	flagStats bool
	flagTag   bool
)

var organizeCmd = &cobra.Command{
	Use:   "organize [path]",
	Short: "Move episode files into Season NN directories",
	Long: "Scans the given directory (default: current directory) for media\n" +
		"files, detects the season of each one and moves it into the matching\n" +
		"season directory. Shows the plan and asks before touching anything.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		return runOrganize(cmd, path)
	},
}

func init() {
	organizeCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "show the plan without moving files")
	organizeCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "skip the confirmation prompt")
	organizeCmd.Flags().BoolVar(&flagStats, "stats", false, "print pattern statistics after the run")
	organizeCmd.Flags().BoolVar(&flagTag, "tag", false, "embed season tags into moved MKV files (needs mkvpropedit)")
	RootCmd.AddCommand(organizeCmd)
}

func runOrganize(cmd *cobra.Command, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	cfg := loadConfig()
	scanResult, err := scan.Scan(absPath, cfg.Formats)
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}
	if !scanResult.HasMedia {
		fmt.Printf("No media files found in: %s\n", StylePath.Render(absPath))
		return nil
	}

	det := season.NewDetector()
	plan := organize.BuildPlan(absPath, scanResult.Files, det)
	if len(plan.Moves) == 0 {
		fmt.Printf("No seasons detected in: %s\n", StylePath.Render(absPath))
		return nil
	}

	if !flagQuiet {
		ClearAndPrintBanner()
	}
	printPlan(plan)

	if !flagYes && !flagDryRun {
		ok, err := confirmPlan(len(plan.Moves))
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("Cancelled")
			return nil
		}
	}

	report, err := plan.Apply(flagDryRun)
	if err != nil {
		return err
	}

	verb := "Moved"
	if report.DryRun {
		verb = "Would move"
	}
	logger.Info(fmt.Sprintf("%s %d file(s)", verb, report.Moved))
	if report.Conflicts > 0 {
		logger.Warn(fmt.Sprintf("%d file(s) skipped: destination already exists", report.Conflicts))
	}
	if flagTag && !flagDryRun {
		tagMoved(cmd, absPath, plan)
	}
	if flagStats {
		printStats(det.Stats())
	}
	return nil
}

// tagMoved stamps season metadata on the MKV files that were just moved.
// Best effort: a tagging failure is logged, not fatal.
func tagMoved(cmd *cobra.Command, dir string, plan *organize.Plan) {
	if !tagger.IsAvailable() {
		logger.Warn("mkvpropedit not found; skipping tags")
		return
	}
	show := showname.CleanName(filepath.Base(dir))
	for _, m := range plan.Moves {
		dest := filepath.Join(m.DestDir, filepath.Base(m.Source))
		if _, err := os.Stat(dest); err != nil {
			continue
		}
		tag := tagger.SeasonTag{Show: show, Season: m.Season}
		if err := tagger.TagFile(cmd.Context(), dest, tag); err != nil {
			logger.Warn("failed to tag file", "file", dest, "err", err)
		}
	}
}

func printPlan(plan *organize.Plan) {
	fmt.Printf("%s in: %s\n", StyleHeader.Render("Planned moves"), StylePath.Render(plan.Dir))
	for _, m := range plan.Moves {
		fmt.Println(styleMove(filepath.Base(m.Source), filepath.Base(m.DestDir), m.Description))
	}
	for _, name := range plan.Skipped {
		fmt.Printf(" %s %s %s\n",
			StyleDim.Render("-"), StyleDim.Render(name), StyleDim.Render("(no season detected)"))
	}
	fmt.Println()
}

func confirmPlan(count int) (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Move %d file(s)?", count)).
			Affirmative("Move").
			Negative("Cancel").
			Value(&confirmed),
	)).WithTheme(seasonsortTheme())

	if err := RunForm(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println()
			logger.Info(StyleDim.Render("Cancelled"))
			os.Exit(0)
		}
		return false, err
	}
	return confirmed, nil
}

func printStats(snap season.Snapshot) {
	fmt.Printf("%s\n", StyleHeader.Render("Pattern statistics"))
	for desc, count := range snap.Counts {
		fmt.Printf(" %s %s: %d\n", StyleDim.Render("-"), StylePattern.Render(desc), count)
	}
	fmt.Printf(" %s patterns used: %d\n", StyleDim.Render("-"), snap.PatternsUsed)
	if snap.AverageConfidence > 0 {
		fmt.Printf(" %s average confidence: %.2f\n", StyleDim.Render("-"), snap.AverageConfidence)
	}
}
