package season

import "strings"

// qualityIndicators are technical-metadata tokens whose presence anywhere in
// a filename disqualifies bare numeric matches. Matched case-insensitively
// as plain substrings.
var qualityIndicators = []string{
	"720p", "1080p", "480p", "2160p", "4k",
	"kbps", "fps", "hdr", "dts", "ac3",
	"h.264", "h.265", "x264", "x265",
	"hevc", "avc", "bluray", "webrip", "dvdrip",
}

// ContainsQualityIndicator reports whether the filename carries a known
// resolution, codec or bitrate token.
func ContainsQualityIndicator(filename string) bool {
	lower := strings.ToLower(filename)
	for _, q := range qualityIndicators {
		if strings.Contains(lower, q) {
			return true
		}
	}
	return false
}

// MinConfidence returns the acceptance threshold for a class that reaches
// confidence scoring. Only NumericOnly uses the stricter 0.30 bar.
func MinConfidence(c Class) float64 {
	if c == NumericOnly {
		return 0.3
	}
	return 0.2
}

// Validator holds the per-class acceptance rules. It is stateless and safe
// to share across goroutines.
type Validator struct{}

// Accept decides whether a syntactic match is a real season. The returned
// confidence is meaningful only when scored is true, which happens on the
// NumericOnly path alone; explicit markers like S01E01 are unambiguous and
// skip both the quality check and the scorer.
func (Validator) Accept(filename string, cand Candidate) (ok bool, confidence float64, scored bool) {
	n := cand.Number
	switch cand.Rule.Class {
	case YearBased:
		// Lower bound only. Shows keep running; no declared maximum.
		return n >= 1990, 0, false
	case Extended:
		return n >= 100 && n <= 2050, 0, false
	case EnhancedAlternative:
		if cand.Rule.Variant == VariantCross {
			return n >= 1 && n <= 500, 0, false
		}
		return n >= 1 && n <= 2050, 0, false
	case NumericOnly:
		if ContainsQualityIndicator(filename) {
			return false, 0, false
		}
		if n < 1 || n > 50 {
			return false, 0, false
		}
		confidence = Score(filename, cand.Text, cand.Offset, cand.Rule.Class)
		return confidence >= MinConfidence(cand.Rule.Class), confidence, true
	default: // Standard, EpisodeLike
		return n >= 1 && n <= 50, 0, false
	}
}
