// Package stringkit provides string case conversion helpers.
package stringkit

import (
	"strings"
	"unicode"
)

func IsSnake(s string) bool {
	chars := []rune(s)
	if len(chars) == 0 {
		return false
	}

	// First and last characters should not be underscores
	if chars[0] == '_' || chars[len(chars)-1] == '_' {
		return false
	}

	var prevWasSeparator bool
	for _, r := range chars {
		if r == '_' {
			if prevWasSeparator {
				return false // No consecutive underscores allowed
			}
			prevWasSeparator = true
			continue
		}
		prevWasSeparator = false
		if !unicode.IsDigit(r) && !(unicode.IsLetter(r) && unicode.IsLower(r)) {
			return false
		}
	}

	return true
}

func ToSnake(s string) string {
	if IsSnake(s) {
		return s
	}

	const separator = '_'
	var (
		chars = []rune(s)
		words [][]rune
		word  []rune
	)
	flush := func() {
		if 0 < len(word) {
			words = append(words, word)
			word = nil
		}
	}
	for i, r := range chars {
		if isWordSeparator(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && isWordBoundary(chars, i) {
			flush()
		}
		word = append(word, unicode.ToLower(r))
	}
	flush()

	var out strings.Builder
	for i, w := range words {
		if 0 < i {
			out.WriteRune(separator)
		}
		out.WriteString(string(w))
	}
	return out.String()
}

// isWordBoundary tells if the uppercase rune at the given index begins a new word.
// A boundary is either a lower-to-upper transition ("fooBar"),
// or the last letter of an abbreviation followed by a lowercase letter ("HTTPFoo").
func isWordBoundary(chars []rune, index int) bool {
	prev, hasPrev := lookupRune(chars, index-1)
	if !hasPrev {
		return false
	}
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	next, hasNext := lookupRune(chars, index+1)
	return unicode.IsUpper(prev) && hasNext && unicode.IsLower(next)
}

func isWordSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

func lookupRune(chars []rune, index int) (rune, bool) {
	if index < 0 || len(chars) <= index {
		return 0, false
	}
	return chars[index], true
}
