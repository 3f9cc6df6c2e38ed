package utils

import (
	"strings"
	"unicode"
)

// CleanText removes emoji (symbol-other and surrogate categories) and
// decorative asterisks from model output before it reaches the document.
func CleanText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r == '*' || unicode.Is(unicode.So, r) || unicode.Is(unicode.Cs, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
