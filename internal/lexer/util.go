package lexer

import (
	"unicode"
	"unicode/utf8"
)

// isWordClassByte reports whether b can appear in a word token.
func isWordClassByte(b byte) bool {
	return b == '\'' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isWordRune matches the regexp \w class: letters, digits, underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wordnessBefore reports whether the rune ending at pos is a word rune.
// Out-of-range counts as non-word.
func wordnessBefore(s string, pos int) bool {
	if pos <= 0 || pos > len(s) {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:pos])
	return isWordRune(r)
}

// wordnessAt reports whether the rune starting at pos is a word rune.
// Out-of-range counts as non-word.
func wordnessAt(s string, pos int) bool {
	if pos < 0 || pos >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return isWordRune(r)
}

// boundaryAt reports whether a word boundary sits immediately before pos:
// the wordness of the surrounding runes differs.
func boundaryAt(s string, pos int) bool {
	return wordnessBefore(s, pos) != wordnessAt(s, pos)
}
