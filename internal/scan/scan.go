// Package scan discovers media files in a directory.
package scan

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultFormats are the extensions (without dot) treated as media when no
// configuration overrides them.
var DefaultFormats = []string{
	"mp4", "mkv", "avi", "mov", "wmv", "flv", "webm", "m4v",
	"mpg", "mpeg", "m2v", "3gp", "ts", "mts", "m2ts",
}

// Result holds the outcome of a directory scan.
type Result struct {
	Files      []string // media filenames (base names, sorted by ReadDir)
	HasMedia   bool
	TotalFiles int
}

// IsMediaFile reports whether name has one of the given extensions. Formats
// are listed without a leading dot.
func IsMediaFile(name string, formats []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 0 {
		ext = ext[1:]
	}
	return slices.Contains(formats, ext)
}

// Scan lists the media files directly inside dir. Subdirectories are not
// descended into; season organization works one show directory at a time.
func Scan(dir string, formats []string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	result := &Result{TotalFiles: len(entries)}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if IsMediaFile(e.Name(), formats) {
			result.HasMedia = true
			result.Files = append(result.Files, e.Name())
		}
	}
	return result, nil
}
