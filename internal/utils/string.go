package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsAllUpper reports whether s is unchanged by upper-casing.
// Strings without letters count as upper-case.
func IsAllUpper(s string) bool {
	return strings.ToUpper(s) == s
}

// UpperFirst upper-cases the first rune of s and keeps the rest.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lower-cases the first rune of s and keeps the rest.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// KeepFirstLowerRest keeps the first rune of s as is and lower-cases the rest.
func KeepFirstLowerRest(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size] + strings.ToLower(s[size:])
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// IsUpperRune reports whether r is unchanged by upper-casing.
func IsUpperRune(r rune) bool {
	return unicode.ToUpper(r) == r
}

// IsValidInput checks if input should be sent to the checker.
// Rejects empty strings, pure numbers and strings without any letter.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
