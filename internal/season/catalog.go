// Package season extracts season numbers from media filenames.
//
// Detection runs a fixed, priority-ordered catalog of regex rules over the
// filename and accepts the first candidate that passes the validation rules
// for its pattern class. Bare numeric matches additionally go through a
// quality-indicator check and a confidence score, which keeps resolution and
// bitrate tokens (720p, 5000kbps) from being mistaken for seasons.
package season

import "regexp"

// Class identifies the priority tier a pattern rule belongs to. Validation,
// numeric range bounds and confidence bonuses all dispatch on the class.
type Class int

const (
	Standard Class = iota
	Extended
	EnhancedAlternative
	YearBased
	EpisodeLike
	NumericOnly
)

// String returns the class name, mainly for logs and test failure output.
func (c Class) String() string {
	switch c {
	case Standard:
		return "Standard"
	case Extended:
		return "Extended"
	case EnhancedAlternative:
		return "EnhancedAlternative"
	case YearBased:
		return "YearBased"
	case EpisodeLike:
		return "EpisodeLike"
	case NumericOnly:
		return "NumericOnly"
	}
	return "Unknown"
}

// Variant distinguishes the two EnhancedAlternative rules, which share a
// class but carry different range bounds.
type Variant int

const (
	VariantNone  Variant = iota
	VariantCross         // "#x#" style (1x05)
	VariantSNum          // "S#" style (S3.)
)

// Rule is one immutable entry of the pattern catalog.
type Rule struct {
	Regex       *regexp.Regexp
	Description string
	Class       Class
	Variant     Variant

	// notAfter rejects a syntactic match when the text immediately following
	// it matches this expression. It stands in for the negative lookahead of
	// the separated-numeric pattern, which Go's regexp cannot express.
	notAfter *regexp.Regexp
}

// NoMatchDescription is the reserved statistics key and result description
// used when no rule accepts a filename.
const NoMatchDescription = "No pattern matched"

// catalog is the fixed rule set, in priority order. The order is a contract:
// earlier classes win over later ones (a 2023 year beats the embedded "1" of
// "Episode 1", explicit S01E01 beats any bare number).
var catalog = []Rule{
	// Standard (highest priority): S01E01, Season 1
	{Regex: regexp.MustCompile(`(?i)s(\d{1,2})e\d{1,3}`), Description: "S##E## format", Class: Standard},
	{Regex: regexp.MustCompile(`(?i)season[\s\._-]*(\d{1,2})`), Description: "Season # format", Class: Standard},

	// Extended seasons: S100 and up, for long-running shows
	{Regex: regexp.MustCompile(`(?i)s(\d{3,4})e\d{1,3}`), Description: "Extended S###E## format", Class: Extended},
	{Regex: regexp.MustCompile(`(?i)season[\s\._-]*(\d{3,4})`), Description: "Extended Season ### format", Class: Extended},

	// Enhanced alternative notations: 1x05, S3.
	{Regex: regexp.MustCompile(`(?i)(\d{1,3})x\d{1,3}`), Description: "Enhanced #x# format", Class: EnhancedAlternative, Variant: VariantCross},
	{Regex: regexp.MustCompile(`(?i)s(\d{1,4})\D`), Description: "Enhanced S# format", Class: EnhancedAlternative, Variant: VariantSNum},

	// Year-based seasons: (2023), [2023], bare 2023
	{Regex: regexp.MustCompile(`(?i)[\(\[]?(20\d{2})[\)\]]?`), Description: "Year format", Class: YearBased},

	// Episode/part/chapter/disc/volume numbering
	{Regex: regexp.MustCompile(`(?i)episode[\s\._-]*(\d{1,3})`), Description: "Episode # format", Class: EpisodeLike},
	{Regex: regexp.MustCompile(`(?i)ep[\s\._-]*(\d{1,3})`), Description: "Ep # format", Class: EpisodeLike},
	{Regex: regexp.MustCompile(`(?i)part[\s\._-]*(\d{1,2})`), Description: "Part # format", Class: EpisodeLike},
	{Regex: regexp.MustCompile(`(?i)chapter[\s\._-]*(\d{1,2})`), Description: "Chapter # format", Class: EpisodeLike},
	{Regex: regexp.MustCompile(`(?i)disc[\s\._-]*(\d{1,2})`), Description: "Disc # format", Class: EpisodeLike},
	{Regex: regexp.MustCompile(`(?i)d(\d{1,2})`), Description: "D# format", Class: EpisodeLike},
	{Regex: regexp.MustCompile(`(?i)vol[\s\._-]*(\d{1,2})`), Description: "Vol # format", Class: EpisodeLike},
	{Regex: regexp.MustCompile(`(?i)v(\d{1,2})`), Description: "V# format", Class: EpisodeLike},

	// Numeric-only (lowest priority, heaviest validation)
	{Regex: regexp.MustCompile(`(?i)(?:ep|episode)[\s\-_.]*(\d{1,2})(?:[^\d]|$)`), Description: "Episode-prefixed numeric format", Class: NumericOnly},
	{
		Regex:       regexp.MustCompile(`(?i)(?:^|[\s\-_.])[^\d]*[\s\-_.](\d{1,2})[\s\-_.]`),
		Description: "Separated numeric format",
		Class:       NumericOnly,
		notAfter:    regexp.MustCompile(`(?i)^\d*(?:p|fps|kbps)`),
	},
}

// Catalog returns the fixed, ordered rule set. Callers must treat the
// returned slice as read-only; it is shared by every Detector.
func Catalog() []Rule {
	return catalog
}
