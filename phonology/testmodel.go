package phonology

// TestModel returns a small ready-made model, covering a handful of
// common consonants and the five cardinal vowels. It is used by the
// package tests and is handy for experiments, but it is in no way a
// complete phonology.
func TestModel() *Model {
	m := New()
	for kind, values := range map[string][]string{
		"type":        {"consonant", "vowel"},
		"voicing":     {"voiced", "voiceless"},
		"place":       {"bilabial", "alveolar", "velar"},
		"manner":      {"stop", "fricative", "nasal", "trill"},
		"height":      {"close", "mid", "open"},
		"backness":    {"front", "central", "back"},
		"roundedness": {"rounded"},
	} {
		for _, value := range values {
			m.AddFeature(value, kind)
		}
	}
	m.AddSound("p", "consonant", "voiceless", "bilabial", "stop")
	m.AddSound("b", "consonant", "voiced", "bilabial", "stop")
	m.AddSound("t", "consonant", "voiceless", "alveolar", "stop")
	m.AddSound("d", "consonant", "voiced", "alveolar", "stop")
	m.AddSound("k", "consonant", "voiceless", "velar", "stop")
	m.AddSound("g", "consonant", "voiced", "velar", "stop")
	m.AddSound("s", "consonant", "voiceless", "alveolar", "fricative")
	m.AddSound("z", "consonant", "voiced", "alveolar", "fricative")
	m.AddSound("m", "consonant", "voiced", "bilabial", "nasal")
	m.AddSound("n", "consonant", "voiced", "alveolar", "nasal")
	m.AddSound("r", "consonant", "voiced", "alveolar", "trill")
	m.AddSound("a", "vowel", "open", "central")
	m.AddSound("e", "vowel", "mid", "front")
	m.AddSound("i", "vowel", "close", "front")
	m.AddSound("o", "vowel", "mid", "back", "rounded")
	m.AddSound("u", "vowel", "close", "back", "rounded")
	m.AddClass("V", "a", "e", "i", "o", "u")
	m.AddClass("C", "p", "b", "t", "d", "k", "g", "s", "z", "m", "n", "r")
	m.AddClass("S", "p", "b", "t", "d", "k", "g")
	return m
}
