package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// NormalizeKanaWidth folds halfwidth katakana (U+FF61..U+FF9F) to fullwidth.
// Other runes, including ASCII, pass through unchanged so Latin fragments keep
// their natural width.
func NormalizeKanaWidth(s string) string {
	if !containsHalfwidthKana(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0xFF61 && r <= 0xFF9F {
			b.WriteString(width.Widen.String(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func containsHalfwidthKana(s string) bool {
	for _, r := range s {
		if r >= 0xFF61 && r <= 0xFF9F {
			return true
		}
	}
	return false
}

// GlyphCount returns the number of display glyphs in s. The alignment
// producer emits one timing slot per glyph, so this is a rune count after
// width normalization.
func GlyphCount(s string) int {
	return utf8.RuneCountInString(s)
}
