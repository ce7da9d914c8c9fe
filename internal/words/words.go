// Package words splits identifiers into words.
package words

import "strings"

// Split splits an identifier into words based on character transitions. It
// detects word boundaries at:
//   - Uppercase letter after lowercase letter: "enumSize" -> "enum" + "Size"
//   - Uppercase letter before lowercase letter: "HTTPCode" -> "HTTP" + "Code"
//   - Around underscores: "fruit_enumSize" -> "fruit" + "_" + "enum" + "Size"
//   - Around digits: "level2name" -> "level" + "2" + "name"
func Split(s string) []string {
	var words []string
	i := 0
	for i < len(s) {
		splitted := false

		j := i + 1
		for ; j < len(s); j++ {
			var next byte
			if j != len(s)-1 {
				next = s[j+1]
			}

			if isWordBoundary(s[j-1], s[j], next) {
				words = append(words, s[i:j])
				i = j
				splitted = true
				break
			}
		}

		if !splitted {
			words = append(words, s[i:])
			break
		}
	}
	return words
}

// HasSuffix reports whether the last words of s are the given words. Each
// word is compared case-insensitively for its first letter only, so "enum"
// matches "Enum" but not "ENUM".
//
//	HasSuffix("FruitEnumSize", "enum", "Size") => true
//	HasSuffix("enumSize", "enum", "Size")      => true
//	HasSuffix("fruitEnumsize", "enum", "Size") => false
func HasSuffix(s string, suffix ...string) bool {
	ws := Split(s)
	if len(ws) < len(suffix) {
		return false
	}
	ws = ws[len(ws)-len(suffix):]
	for i, w := range ws {
		if !equalFoldFirst(w, suffix[i]) {
			return false
		}
	}
	return true
}

// equalFoldFirst compares a and b ignoring the case of the first letter.
func equalFoldFirst(a, b string) bool {
	if len(a) != len(b) || len(a) == 0 {
		return a == b
	}
	return strings.EqualFold(a[:1], b[:1]) && a[1:] == b[1:]
}

// isWordBoundary detects word boundaries based on character transitions.
func isWordBoundary(prev, curr, next byte) bool {
	// Uppercase after lowercase (camelCase transition)
	if isLower(prev) && isUpper(curr) {
		return true
	}
	// Uppercase before lowercase (camelCase transition)
	if isUpper(curr) && isLower(next) {
		return true
	}

	// Underscore after non-underscore
	if prev != '_' && curr == '_' {
		return true
	}
	// Non-underscore after underscore
	if prev == '_' && curr != '_' {
		return true
	}

	// Digit after letter
	if isLetter(prev) && isDigit(curr) {
		return true
	}
	// Letter after digit
	if isDigit(prev) && isLetter(curr) {
		return true
	}

	return false
}

func isLower(c byte) bool  { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool  { return 'A' <= c && c <= 'Z' }
func isLetter(c byte) bool { return isLower(c) || isUpper(c) }
func isDigit(c byte) bool  { return '0' <= c && c <= '9' }
