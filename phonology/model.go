package phonology

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/soundlaw"
	"github.com/npillmayer/soundlaw/internal/tracing"
)

// Model is a descriptor-based implementation of soundlaw.Phonology.
// Clients register features, sounds and classes first and use the
// model read-only afterwards; concurrent ApplyModifier calls on a
// fully built model are safe.
type Model struct {
	features  map[string]string       // descriptor value to its kind
	sounds    map[string]*treeset.Set // grapheme to descriptor set
	grapheme  map[string]string       // sorted descriptor key to grapheme
	classes   map[string][]string     // class name to member graphemes
	inverse   map[string]string       // exception table for inverse application
	cacheLock sync.RWMutex
	modCache  map[string]string
}

// New creates an empty model.
func New() *Model {
	return &Model{
		features: make(map[string]string),
		sounds:   make(map[string]*treeset.Set),
		grapheme: make(map[string]string),
		classes:  make(map[string][]string),
		inverse:  make(map[string]string),
		modCache: make(map[string]string),
	}
}

// AddFeature registers a descriptor value together with its kind,
// e.g. ("voiced", "voicing"). Positive features replace descriptors
// of the same kind when a modifier is applied.
func (m *Model) AddFeature(value, kind string) *Model {
	m.features[value] = kind
	return m
}

// AddSound registers a grapheme with its descriptors. Descriptor sets
// must be unique per grapheme; a clash makes modifier resolution
// ambiguous and the later registration wins.
func (m *Model) AddSound(grapheme string, descriptors ...string) *Model {
	set := treeset.NewWithStringComparator()
	for _, d := range descriptors {
		set.Add(d)
	}
	m.sounds[grapheme] = set
	m.grapheme[descriptorKey(set)] = grapheme
	return m
}

// AddClass registers a sound class, e.g. ("V", "a", "e", "i", "o", "u").
func (m *Model) AddClass(name string, members ...string) *Model {
	m.classes[name] = append([]string{}, members...)
	return m
}

// AddInverse seeds the exception table for inverse modifier
// application: applying delta inversely to grapheme yields result.
// Exceptions take precedence over the inventory search.
func (m *Model) AddInverse(grapheme string, delta soundlaw.Features, result string) *Model {
	m.inverse[cacheKey(grapheme, delta, true)] = result
	return m
}

// ClassMembers is part of interface soundlaw.Phonology.
func (m *Model) ClassMembers(name string) []string {
	return m.classes[name]
}

// Descriptors is part of interface soundlaw.Phonology. The returned
// slice is sorted.
func (m *Model) Descriptors(grapheme string) ([]string, bool) {
	set, ok := m.sounds[grapheme]
	if !ok {
		return nil, false
	}
	descs := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		descs = append(descs, v.(string))
	}
	return descs, true
}

// ApplyModifier is part of interface soundlaw.Phonology.
//
// Forward application rewrites the grapheme's descriptor set: negative
// features drop their descriptor, positive features replace the
// descriptor of the same kind, key=value features replace by kind
// name. The rewritten set must name exactly one inventory grapheme.
//
// Inverse application finds the grapheme the forward delta would have
// started from. The inventory is searched for a unique non-identity
// pre-image; exceptions registered with AddInverse win over the
// search.
func (m *Model) ApplyModifier(grapheme string, delta soundlaw.Features, inverse bool) (string, error) {
	if delta.IsZero() {
		return grapheme, nil
	}
	key := cacheKey(grapheme, delta, inverse)
	m.cacheLock.RLock()
	cached, hit := m.modCache[key]
	m.cacheLock.RUnlock()
	if hit {
		return cached, nil
	}
	var result string
	var err error
	if inverse {
		result, err = m.applyInverse(grapheme, delta, key)
	} else {
		result, err = m.applyForward(grapheme, delta)
	}
	if err != nil {
		return "", err
	}
	m.cacheLock.Lock()
	m.modCache[key] = result
	m.cacheLock.Unlock()
	tracing.P("sound", grapheme).Debugf("modifier %s (inverse=%v) resolved to %s",
		delta.String(), inverse, result)
	return result, nil
}

func (m *Model) applyForward(grapheme string, delta soundlaw.Features) (string, error) {
	set, ok := m.sounds[grapheme]
	if !ok {
		return "", &soundlaw.UnresolvedModifier{Grapheme: grapheme, Delta: delta}
	}
	rewritten := treeset.NewWithStringComparator()
	for _, v := range set.Values() {
		rewritten.Add(v.(string))
	}
	for _, neg := range delta.Negative {
		rewritten.Remove(neg)
	}
	for _, pos := range delta.Positive {
		m.dropKind(rewritten, m.features[pos])
		rewritten.Add(pos)
	}
	for kind, value := range delta.Custom {
		m.dropKind(rewritten, kind)
		rewritten.Add(value)
	}
	result, ok := m.grapheme[descriptorKey(rewritten)]
	if !ok {
		return "", &soundlaw.UnresolvedModifier{Grapheme: grapheme, Delta: delta}
	}
	return result, nil
}

// dropKind removes all descriptors of the given kind from the set.
func (m *Model) dropKind(set *treeset.Set, kind string) {
	if kind == "" {
		return
	}
	var doomed []interface{}
	for _, v := range set.Values() {
		if m.features[v.(string)] == kind {
			doomed = append(doomed, v)
		}
	}
	set.Remove(doomed...)
}

func (m *Model) applyInverse(grapheme string, delta soundlaw.Features, key string) (string, error) {
	if exception, ok := m.inverse[key]; ok {
		return exception, nil
	}
	// graphemes in sorted order, so that an ambiguous search at least
	// fails deterministically
	candidates := make([]string, 0, 1)
	for _, pre := range m.sortedGraphemes() {
		if pre == grapheme {
			continue
		}
		image, err := m.applyForward(pre, delta)
		if err == nil && image == grapheme {
			candidates = append(candidates, pre)
		}
	}
	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		// the delta may be an identity on this grapheme
		if image, err := m.applyForward(grapheme, delta); err == nil && image == grapheme {
			return grapheme, nil
		}
	}
	return "", &soundlaw.UnresolvedModifier{Grapheme: grapheme, Delta: delta, Inverse: true}
}

func (m *Model) sortedGraphemes() []string {
	graphemes := make([]string, 0, len(m.sounds))
	for g := range m.sounds {
		graphemes = append(graphemes, g)
	}
	sort.Strings(graphemes)
	return graphemes
}

// descriptorKey builds the canonical lookup key for a descriptor set.
func descriptorKey(set *treeset.Set) string {
	var sb strings.Builder
	for i, v := range set.Values() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.(string))
	}
	return sb.String()
}

func cacheKey(grapheme string, delta soundlaw.Features, inverse bool) string {
	return grapheme + "\x00" + delta.String() + "\x00" + strconv.FormatBool(inverse)
}
