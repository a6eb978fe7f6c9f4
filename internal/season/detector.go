package season

import "strconv"

// MaxFilenameLen caps the input seen by the regex engine. Some catalog
// patterns use unanchored greedy groups, so pathological inputs are
// truncated before matching.
const MaxFilenameLen = 1024

// Candidate is a transient syntactic match, discarded when validation
// rejects it.
type Candidate struct {
	Text   string
	Offset int
	Number int
	Rule   *Rule
}

// Result is the outcome of one Extract call. Found=false with the
// NoMatchDescription label is the canonical "no season detected" value; the
// caller decides what that means (skip the file, prompt, fall back).
type Result struct {
	Season      int
	Found       bool
	Class       Class
	Description string
	MatchedText string
}

// Detector runs the pattern catalog over filenames and owns the statistics
// for its processing session. A Detector is not safe for unsynchronized
// concurrent use; give each worker its own and Merge afterwards.
type Detector struct {
	rules     []Rule
	validator Validator
	stats     *Stats
}

// NewDetector returns a detector with fresh statistics. The rule catalog is
// shared and immutable, so construction is cheap.
func NewDetector() *Detector {
	return &Detector{rules: Catalog(), stats: NewStats()}
}

// Extract returns the season detected in filename, or a not-found Result.
// Rules are tried in catalog order and the first validated match wins; a
// rejected candidate never falls back to a lower-priority rule for the same
// substring. Extract is total: it never panics for any finite input.
func (d *Detector) Extract(filename string) Result {
	name := filename
	if len(name) > MaxFilenameLen {
		name = name[:MaxFilenameLen]
	}

	for i := range d.rules {
		rule := &d.rules[i]
		cand, ok := findCandidate(rule, name)
		if !ok {
			continue
		}
		accepted, confidence, scored := d.validator.Accept(name, cand)
		if !accepted {
			continue
		}
		d.stats.Record(rule.Description)
		if scored {
			d.stats.RecordConfidence(confidence)
		}
		return Result{
			Season:      cand.Number,
			Found:       true,
			Class:       rule.Class,
			Description: rule.Description,
			MatchedText: cand.Text,
		}
	}

	d.stats.Record(NoMatchDescription)
	return Result{Description: NoMatchDescription}
}

// Stats returns a copy of the detector's statistics so far.
func (d *Detector) Stats() Snapshot {
	return d.stats.Snapshot()
}

// Merge folds another detector's statistics into this one, supporting the
// one-detector-per-worker pattern.
func (d *Detector) Merge(other *Detector) {
	d.stats.Merge(other.stats)
}

// findCandidate searches name for rule and returns the first syntactic match
// that passes the rule's follow-guard. A capture that does not parse as an
// integer is treated as no match for the rule.
func findCandidate(rule *Rule, name string) (Candidate, bool) {
	pos := 0
	for pos <= len(name) {
		loc := rule.Regex.FindStringSubmatchIndex(name[pos:])
		if loc == nil {
			return Candidate{}, false
		}
		start, end := pos+loc[0], pos+loc[1]
		if rule.notAfter != nil && rule.notAfter.MatchString(name[end:]) {
			// Guard fired: resume the search just past the rejected start.
			pos = start + 1
			continue
		}
		if loc[2] < 0 || loc[3] < 0 {
			return Candidate{}, false
		}
		num, err := strconv.Atoi(name[pos+loc[2] : pos+loc[3]])
		if err != nil {
			return Candidate{}, false
		}
		return Candidate{Text: name[start:end], Offset: start, Number: num, Rule: rule}, true
	}
	return Candidate{}, false
}
