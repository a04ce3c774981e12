package soundlaw

// Phonology is the narrow interface through which the matcher and the
// transducers consult the phonological feature database. The library
// never implements feature algebra itself; sub-package phonology
// provides an in-memory implementation, and callers may substitute
// their own.
//
// Implementations must be safe for concurrent readers; internal
// memoization with serialized writes is permitted (a duplicate
// computation on a cache race is harmless, the functions are pure).
type Phonology interface {
	// ClassMembers resolves a sound-class name ("V", "C", ...) to the
	// graphemes it covers. Unknown classes resolve to an empty set.
	ClassMembers(name string) []string

	// Descriptors returns the feature descriptors of a grapheme, and
	// whether the grapheme is known at all. Units without descriptors
	// (such as the boundary marker) report false.
	Descriptors(grapheme string) ([]string, bool)

	// ApplyModifier resolves a grapheme plus a feature delta to a
	// (possibly new) grapheme. With inverse set, it answers the
	// reconstruction question instead: which grapheme, after applying
	// delta, would have produced this one. Fails with
	// *UnresolvedModifier when no grapheme satisfies the resulting
	// descriptor set (forward), or when no inverse mapping is known
	// (backward).
	ApplyModifier(grapheme string, delta Features, inverse bool) (string, error)
}
