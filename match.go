package soundlaw

// Match is the outcome of matching a single unit against a single
// pattern token. For capturing sets, Alt records the 1-based index of
// the alternative that matched, never zero, so that "alternative 0
// matched" cannot be confused with "no match". For every other token
// kind Alt is 0 and only OK carries information.
type Match struct {
	OK  bool
	Alt int
}

// MatchResult is the per-position outcome of matching a window against
// a pattern. Its length always equals the window length; a window that
// could not be evaluated (e.g. length mismatch with the pattern) is
// reported as all-failed positions.
type MatchResult []Match

// Matched reports whether every position of the window matched.
func (mr MatchResult) Matched() bool {
	for _, m := range mr {
		if !m.OK {
			return false
		}
	}
	return true
}

// Captures collects the 1-based set-alternative indices in window
// order. Forward translation pairs them with the capturing sets of the
// post pattern by input order.
func (mr MatchResult) Captures() []int {
	var alts []int
	for _, m := range mr {
		if m.OK && m.Alt > 0 {
			alts = append(alts, m.Alt)
		}
	}
	return alts
}

// NoMatches is the all-failed result for a window of n units.
func NoMatches(n int) MatchResult {
	return make(MatchResult, n)
}
