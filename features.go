package soundlaw

import (
	"sort"
	"strings"
)

// Features is a feature delta, parametrizing the modifiers of sound
// classes, segments and back-references. Positive and Negative are
// kept sorted and deduplicated, so that equality is set-equality and
// the String form is canonical (usable as a cache key).
type Features struct {
	Positive []string
	Negative []string
	Custom   map[string]string
}

// ParseFeatures parses a feature constraint list such as
// "[+fricative,-voiced]" or "voiced,stop=true". Surrounding brackets
// are optional, so the function can be used both on full modifiers and
// on bare lists. Features without a sign default to positive;
// "name=true" and "name=false" are equivalent to "+name" and "-name";
// any other "name=value" pair is collected as a custom feature.
func ParseFeatures(text string) Features {
	text = strings.ReplaceAll(text, "[", "")
	text = strings.ReplaceAll(text, "]", "")
	text = strings.TrimSpace(text)

	var f Features
	if text == "" {
		return f
	}
	for _, feat := range strings.Split(text, ",") {
		feat = strings.TrimSpace(feat)
		if feat == "" {
			continue
		}
		switch {
		case feat[0] == '-':
			f.Negative = append(f.Negative, feat[1:])
		case feat[0] == '+':
			f.Positive = append(f.Positive, feat[1:])
		case strings.Contains(feat, "="):
			parts := strings.SplitN(feat, "=", 2)
			name, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
			switch value {
			case "true":
				f.Positive = append(f.Positive, name)
			case "false":
				f.Negative = append(f.Negative, name)
			default:
				if f.Custom == nil {
					f.Custom = make(map[string]string)
				}
				f.Custom[name] = value
			}
		default:
			f.Positive = append(f.Positive, feat)
		}
	}
	f.Positive = sortedUnique(f.Positive)
	f.Negative = sortedUnique(f.Negative)
	return f
}

// IsZero reports whether the delta carries no constraints at all.
func (f Features) IsZero() bool {
	return len(f.Positive) == 0 && len(f.Negative) == 0 && len(f.Custom) == 0
}

// Equal implements set-equality on Positive/Negative plus map-equality
// on Custom.
func (f Features) Equal(other Features) bool {
	if !equalStrings(f.Positive, other.Positive) || !equalStrings(f.Negative, other.Negative) {
		return false
	}
	if len(f.Custom) != len(other.Custom) {
		return false
	}
	for k, v := range f.Custom {
		if w, ok := other.Custom[k]; !ok || v != w {
			return false
		}
	}
	return true
}

// String returns the canonical bracketed form, e.g. "[+front,-rounded]".
// The receiver is a pointer so that optional (nil) modifiers of tokens
// render as the empty string.
func (f *Features) String() string {
	if f == nil || f.IsZero() {
		return ""
	}
	var parts []string
	for _, feat := range f.Positive {
		parts = append(parts, "+"+feat)
	}
	for _, feat := range f.Negative {
		parts = append(parts, "-"+feat)
	}
	custom := make([]string, 0, len(f.Custom))
	for name, value := range f.Custom {
		custom = append(custom, name+"="+value)
	}
	sort.Strings(custom)
	parts = append(parts, custom...)
	return "[" + strings.Join(parts, ",") + "]"
}

func sortedUnique(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	sort.Strings(values)
	out := values[:1]
	for _, v := range values[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
