// Package organize plans and executes moves of episode files into season
// directories. The season detection itself lives in internal/season; this
// package only consumes its results.
package organize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/plexkit/seasonsort/internal/season"
)

// Move is one planned file relocation.
type Move struct {
	Source      string // absolute path of the file
	DestDir     string // absolute path of the target season directory
	Season      int
	Description string // pattern description that matched
}

// Plan is the full set of moves for one show directory.
type Plan struct {
	Dir     string
	Moves   []Move
	Skipped []string // files with no detected season
}

// Report summarizes an Apply run.
type Report struct {
	Moved     int
	Conflicts int // destination already existed; file left in place
	DryRun    bool
}

// BuildPlan runs detection over the given filenames (relative to dir) and
// returns the moves that would organize them. Files already inside a season
// directory are not the caller's concern here; the scan layer only hands
// over top-level files.
func BuildPlan(dir string, files []string, det *season.Detector) *Plan {
	plan := &Plan{Dir: dir}
	for _, name := range files {
		res := det.Extract(name)
		if !res.Found {
			plan.Skipped = append(plan.Skipped, name)
			continue
		}
		plan.Moves = append(plan.Moves, Move{
			Source:      filepath.Join(dir, name),
			DestDir:     filepath.Join(dir, season.DirName(res.Season, res.Class)),
			Season:      res.Season,
			Description: res.Description,
		})
	}
	return plan
}

// Apply executes the plan. Season directories are created on demand and an
// existing file at a destination is never overwritten; it is counted as a
// conflict and the source stays put. With dryRun set, nothing touches the
// filesystem.
func (p *Plan) Apply(dryRun bool) (*Report, error) {
	report := &Report{DryRun: dryRun}
	for _, m := range p.Moves {
		dest := filepath.Join(m.DestDir, filepath.Base(m.Source))
		if dryRun {
			report.Moved++
			continue
		}
		if err := os.MkdirAll(m.DestDir, 0o755); err != nil {
			return report, fmt.Errorf("failed to create %s: %w", m.DestDir, err)
		}
		if _, err := os.Lstat(dest); err == nil {
			report.Conflicts++
			continue
		}
		if err := os.Rename(m.Source, dest); err != nil {
			return report, fmt.Errorf("failed to move %s: %w", m.Source, err)
		}
		report.Moved++
	}
	return report, nil
}
