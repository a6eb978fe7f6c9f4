package organize_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plexkit/seasonsort/internal/organize"
	"github.com/plexkit/seasonsort/internal/season"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBuildPlan(t *testing.T) {
	dir := t.TempDir()
	files := []string{"Show.S01E01.mkv", "Show.S01E02.mkv", "Show.S02E01.mkv", "random.mkv"}

	plan := organize.BuildPlan(dir, files, season.NewDetector())
	if len(plan.Moves) != 3 {
		t.Fatalf("planned %d moves; want 3", len(plan.Moves))
	}
	if len(plan.Skipped) != 1 || plan.Skipped[0] != "random.mkv" {
		t.Errorf("Skipped = %v; want [random.mkv]", plan.Skipped)
	}
	want := filepath.Join(dir, "Season 01")
	if plan.Moves[0].DestDir != want {
		t.Errorf("DestDir = %q; want %q", plan.Moves[0].DestDir, want)
	}
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	files := []string{"Show.S01E01.mkv", "Show.S02E01.mkv"}
	writeFiles(t, dir, files...)

	plan := organize.BuildPlan(dir, files, season.NewDetector())
	report, err := plan.Apply(false)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if report.Moved != 2 || report.Conflicts != 0 {
		t.Fatalf("report = %+v; want 2 moved", report)
	}

	for _, p := range []string{
		filepath.Join(dir, "Season 01", "Show.S01E01.mkv"),
		filepath.Join(dir, "Season 02", "Show.S02E01.mkv"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "Show.S01E01.mkv")); !os.IsNotExist(err) {
		t.Error("source file still present after move")
	}
}

func TestApplyDryRun(t *testing.T) {
	dir := t.TempDir()
	files := []string{"Show.S01E01.mkv"}
	writeFiles(t, dir, files...)

	plan := organize.BuildPlan(dir, files, season.NewDetector())
	report, err := plan.Apply(true)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if report.Moved != 1 || !report.DryRun {
		t.Errorf("report = %+v; want 1 dry-run move", report)
	}
	if _, err := os.Stat(filepath.Join(dir, "Season 01")); !os.IsNotExist(err) {
		t.Error("dry run created a season directory")
	}
	if _, err := os.Stat(filepath.Join(dir, "Show.S01E01.mkv")); err != nil {
		t.Errorf("dry run moved the source file: %v", err)
	}
}

func TestApplyConflict(t *testing.T) {
	dir := t.TempDir()
	files := []string{"Show.S01E01.mkv"}
	writeFiles(t, dir, files...)
	if err := os.MkdirAll(filepath.Join(dir, "Season 01"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFiles(t, filepath.Join(dir, "Season 01"), "Show.S01E01.mkv")

	plan := organize.BuildPlan(dir, files, season.NewDetector())
	report, err := plan.Apply(false)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if report.Conflicts != 1 || report.Moved != 0 {
		t.Errorf("report = %+v; want 1 conflict, 0 moved", report)
	}
	if _, err := os.Stat(filepath.Join(dir, "Show.S01E01.mkv")); err != nil {
		t.Errorf("conflicting source was removed: %v", err)
	}
}
