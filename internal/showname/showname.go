// Package showname parses and cleans show directory names for metadata
// lookups: year extraction, search-query cleanup and year formatting.
package showname

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Year validation bounds. Names carry production years, not arbitrary
// four-digit numbers.
const (
	MinYear = 1900
	MaxYear = 2030
)

// yearPatterns are tried in order; the first in-range capture wins.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\((\d{4})\)`),
	regexp.MustCompile(`\[(\d{4})\]`),
	regexp.MustCompile(`\.(\d{4})\.`),
	regexp.MustCompile(`\s(\d{4})\s`),
	regexp.MustCompile(`-(\d{4})-`),
	regexp.MustCompile(`_(\d{4})_`),
	regexp.MustCompile(`\.(\d{4})$`),
	regexp.MustCompile(`\s(\d{4})$`),
	regexp.MustCompile(`-(\d{4})$`),
	regexp.MustCompile(`_(\d{4})$`),
	regexp.MustCompile(`^(\d{4})\.`),
	regexp.MustCompile(`^(\d{4})\s`),
	regexp.MustCompile(`^(\d{4})-`),
	regexp.MustCompile(`^(\d{4})_`),
	regexp.MustCompile(`\b(\d{4})\b`),
}

var (
	multiSpace   = regexp.MustCompile(`\s+`)
	trailingPunc = regexp.MustCompile(`[._-]+$`)
	leadingPunc  = regexp.MustCompile(`^[._-]+`)
)

// ExtractYear returns the first valid year found in name.
func ExtractYear(name string) (int, bool) {
	for _, re := range yearPatterns {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if year >= MinYear && year <= MaxYear {
			return year, true
		}
	}
	return 0, false
}

// CleanName strips year tokens and surrounding punctuation so the result is
// usable as a database search query.
func CleanName(name string) string {
	cleaned := name
	for _, re := range yearPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.TrimSpace(multiSpace.ReplaceAllString(cleaned, " "))
	cleaned = trailingPunc.ReplaceAllString(cleaned, "")
	cleaned = leadingPunc.ReplaceAllString(cleaned, "")
	return cleaned
}

// NeedsYearUpdate compares the year embedded in current against the
// authoritative one. currentYear is 0 when the name has no year.
func NeedsYearUpdate(current string, correctYear int) (needsUpdate bool, currentYear int) {
	year, ok := ExtractYear(current)
	if !ok {
		return true, 0
	}
	return year != correctYear, year
}

// FormatWithYear renders "Name (YYYY)".
func FormatWithYear(base string, year int) string {
	return fmt.Sprintf("%s (%d)", strings.TrimSpace(base), year)
}
