package shared

import (
	"unicode"
)

// TruncateWithEllipsis shortens text to at most maxLen runes, preferably at
// the last whitespace, and appends an ellipsis. It never cuts inside a rune.
func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := -1
	runeCount := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		if runeCount == maxLen {
			// i is the byte index of the first rune past maxLen
			if lastSpaceIx < 0 {
				lastSpaceIx = i
			}
			return text[:lastSpaceIx] + "…"
		}
		runeCount++
	}
	// If here, string is shorter or equal to maxLen
	return text
}

// StripControl removes control characters except newline and tab, so that
// remote text cannot inject terminal escape sequences.
func StripControl(text string) string {
	hasCtrl := false
	for _, r := range text {
		if r != '\n' && r != '\t' && unicode.IsControl(r) {
			hasCtrl = true
			break
		}
	}
	if !hasCtrl {
		return text
	}
	res := make([]rune, 0, len(text))
	for _, r := range text {
		if r != '\n' && r != '\t' && unicode.IsControl(r) {
			continue
		}
		res = append(res, r)
	}
	return string(res)
}
