package season

import "strings"

// Context tokens inspected in a small window around the match. Positive
// tokens add 0.1 each, negative tokens subtract 0.2 each; every distinct
// token found counts, there is no cap per group.
var (
	positiveContext = []string{"ep", "episode", "season", "series", "-", "_", ".", " "}
	negativeContext = []string{"p", "fps", "kbps", "bit", "mb", "gb"}

	// structureMarkers indicate an organized release name; any one of them
	// present in the full filename is worth a single 0.2 bonus.
	structureMarkers = []string{" - ", ".", "_", "S0", "s0", "Season", "season"}
)

// Score computes the heuristic confidence that the match at offset is a real
// season number. The result is clamped to [0.0, 1.0]. The formula is a fixed
// contract: position term, class bonus, context-window tokens, structure
// bonus, in that order.
func Score(filename, matchText string, offset int, class Class) float64 {
	score := 0.0

	if n := len(filename); n > 0 {
		rel := float64(offset) / float64(n)
		switch {
		case rel > 0.7:
			score -= 0.5 // late in the name, likely resolution/bitrate noise
		case rel < 0.3:
			score += 0.3
		}
	}

	switch class {
	case Extended:
		score += 0.4
	case NumericOnly:
		score += 0.2
	case EnhancedAlternative:
		score += 0.3
	}

	start := offset - 3
	if start < 0 {
		start = 0
	}
	if start > len(filename) {
		start = len(filename)
	}
	end := offset + len(matchText) + 3
	if end > len(filename) {
		end = len(filename)
	}
	if end < start {
		end = start
	}
	window := strings.ToLower(filename[start:end])

	for _, tok := range positiveContext {
		if strings.Contains(window, tok) {
			score += 0.1
		}
	}
	for _, tok := range negativeContext {
		if strings.Contains(window, tok) {
			score -= 0.2
		}
	}

	for _, marker := range structureMarkers {
		if strings.Contains(filename, marker) {
			score += 0.2
			break
		}
	}

	if score < 0.0 {
		score = 0.0
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
