package utils

import (
	"golang.org/x/text/unicode/norm"
)

// NormalizeText returns s in Unicode NFC form.
func NormalizeText(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
