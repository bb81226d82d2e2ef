package riddle

import "strings"

// Normalize lowercases s, trims surrounding whitespace and drops every rune
// that is not a lowercase ASCII letter, digit or space.
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Matches reports whether input normalizes to the same string as at least one
// accepted answer. Empty input never matches.
func Matches(input string, accepted []string) bool {
	in := Normalize(input)
	if in == "" {
		return false
	}
	for _, a := range accepted {
		if Normalize(a) == in {
			return true
		}
	}
	return false
}

// Check matches input against the accepted answers of e.
func (e Entry) Check(input string) bool {
	return Matches(input, e.Answers)
}
