// Package token normalizes free text into comparable search terms.
package token

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Set is an unordered, deduplicated collection of tokens.
type Set map[string]struct{}

// Normalize lowercases text in NFC form so decomposed Hangul compares equal
// to precomposed input.
func Normalize(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}

// Split returns the distinct tokens of text in first-seen order.
// Every rune other than an ASCII letter or digit or a Hangul syllable
// separates tokens.
func Split(text string) []string {
	fields := strings.FieldsFunc(Normalize(text), func(r rune) bool { return !isTokenRune(r) })
	if len(fields) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// Tokenize returns the token set of text. Empty text yields an empty set.
func Tokenize(text string) Set {
	return FromSlice(Split(text))
}

// Of tokenizes the space-joined parts.
func Of(parts ...string) Set {
	return Tokenize(strings.Join(parts, " "))
}

// FromSlice builds a set from already-normalized tokens.
func FromSlice(tokens []string) Set {
	s := make(Set, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether t is in the set.
func (s Set) Has(t string) bool {
	_, ok := s[t]
	return ok
}

// Sorted returns the tokens in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// String joins the sorted tokens with single spaces.
func (s Set) String() string {
	return strings.Join(s.Sorted(), " ")
}

// Count returns how many of the query tokens occur in s. Each query token
// counts at most once.
func (s Set) Count(query []string) int {
	n := 0
	for _, t := range query {
		if s.Has(t) {
			n++
		}
	}
	return n
}

func isTokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r >= 0xAC00 && r <= 0xD7A3: // Hangul syllables 가..힣
		return true
	}
	return false
}
