// Package textutil holds the small string predicates and transforms used on
// record fields.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsWhitespace reports whether r is whitespace: the ASCII controls \t \n \v
// \f \r and U+001C..U+001F, plus Unicode space, line and paragraph
// separators. No-break spaces (U+00A0, U+2007, U+202F) are content.
func IsWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u001c', '\u001d', '\u001e', '\u001f':
		return true
	case '\u00a0', '\u2007', '\u202f':
		return false
	}

	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !IsWhitespace(r) }) < 0
}

// IsNotBlank reports whether s has at least one non-whitespace rune.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsNotBlankValue is IsNotBlank for an untyped value. nil and non-string
// values are never "not blank".
func IsNotBlankValue(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return IsNotBlank(s)
}

// Upper applies full Unicode uppercase mapping, so "ß" becomes "SS".
// A Caser keeps state, hence one per call.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// UpperIfNotBlank uppercases v when it is a non-blank string.
func UpperIfNotBlank(v interface{}) (string, bool) {
	if !IsNotBlankValue(v) {
		return "", false
	}
	return Upper(v.(string)), true
}
