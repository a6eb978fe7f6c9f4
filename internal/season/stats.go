package season

// Stats counts accepted matches per pattern description and collects the
// confidence samples produced on the NumericOnly path. One Stats belongs to
// exactly one Detector; it has no internal locking.
type Stats struct {
	counts  map[string]int
	samples []float64
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{counts: make(map[string]int)}
}

// Record increments the counter for a pattern description, including the
// NoMatchDescription sentinel.
func (s *Stats) Record(description string) {
	s.counts[description]++
}

// RecordConfidence appends one confidence sample.
func (s *Stats) RecordConfidence(v float64) {
	s.samples = append(s.samples, v)
}

// Merge adds another Stats' counters and samples into s.
func (s *Stats) Merge(other *Stats) {
	for desc, n := range other.counts {
		s.counts[desc] += n
	}
	s.samples = append(s.samples, other.samples...)
}

// Snapshot is a point-in-time copy of the statistics.
type Snapshot struct {
	Counts            map[string]int
	PatternsUsed      int
	AverageConfidence float64
}

// Snapshot returns the current counters. PatternsUsed is the number of
// distinct pattern descriptions seen at least once; the no-match sentinel is
// counted but is not a pattern. AverageConfidence is 0.0 when no samples were
// collected.
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{Counts: make(map[string]int, len(s.counts))}
	for desc, n := range s.counts {
		snap.Counts[desc] = n
		if n > 0 && desc != NoMatchDescription {
			snap.PatternsUsed++
		}
	}
	if len(s.samples) > 0 {
		sum := 0.0
		for _, v := range s.samples {
			sum += v
		}
		snap.AverageConfidence = sum / float64(len(s.samples))
	}
	return snap
}
