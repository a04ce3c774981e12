package notation

import "errors"

// Atom-level faults; Parse wraps them into *soundlaw.SyntaxError with
// rule text and position attached.
var (
	errEmptyAtom         = errors.New("empty atom")
	errUnbalanced        = errors.New("unbalanced brackets")
	errLonelyAlternative = errors.New("alternation needs at least two alternatives")
	errBadBackRef        = errors.New("back-reference must be @N with N >= 1")
	errEmptyModifier     = errors.New("empty modifier")
)
