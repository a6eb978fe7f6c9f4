package showname_test

import (
	"testing"

	"github.com/plexkit/seasonsort/internal/showname"
)

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name string
		year int
		ok   bool
	}{
		{"Breaking Bad (2008)", 2008, true},
		{"The Wire [2002]", 2002, true},
		{"The.Wire.2002.Complete", 2002, true},
		{"Show Name - 2010", 2010, true},
		{"Show Name", 0, false},
		{"Show 9999", 0, false}, // out of range
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, ok := showname.ExtractYear(tt.name)
			if ok != tt.ok || year != tt.year {
				t.Errorf("ExtractYear(%q) = %d, %v; want %d, %v", tt.name, year, ok, tt.year, tt.ok)
			}
		})
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Breaking Bad (2008)", "Breaking Bad"},
		{"The Wire [2002]", "The Wire"},
		{"Show Name", "Show Name"},
		{"  Spaced   Out  ", "Spaced Out"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := showname.CleanName(tt.in); got != tt.want {
				t.Errorf("CleanName(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNeedsYearUpdate(t *testing.T) {
	tests := []struct {
		name        string
		correct     int
		needsUpdate bool
		current     int
	}{
		{"Breaking Bad", 2008, true, 0},
		{"Breaking Bad (2007)", 2008, true, 2007},
		{"Breaking Bad (2008)", 2008, false, 2008},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			needs, current := showname.NeedsYearUpdate(tt.name, tt.correct)
			if needs != tt.needsUpdate || current != tt.current {
				t.Errorf("NeedsYearUpdate(%q, %d) = %v, %d; want %v, %d",
					tt.name, tt.correct, needs, current, tt.needsUpdate, tt.current)
			}
		})
	}
}

func TestFormatWithYear(t *testing.T) {
	if got := showname.FormatWithYear(" Breaking Bad ", 2008); got != "Breaking Bad (2008)" {
		t.Errorf("FormatWithYear = %q", got)
	}
}
