package segment

// Character-class helpers. Japanese has no whitespace, so script
// transitions (hiragana/katakana/kanji boundaries) stand in for word
// boundaries when choosing split points.

type charClass int

const (
	classOther charClass = iota
	classHiragana
	classKatakana
	classKanji
)

func classify(r rune) charClass {
	switch {
	case r >= 0x3041 && r <= 0x309F:
		return classHiragana
	case (r >= 0x30A0 && r <= 0x30FF) || (r >= 0x31F0 && r <= 0x31FF):
		return classKatakana
	case (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF) || r == '々':
		return classKanji
	default:
		return classOther
	}
}

// transitionRank scores the boundary between prev and next. Lower is a
// better place to break a line.
func transitionRank(prev, next rune) int {
	p, n := classify(prev), classify(next)
	switch {
	case p == classHiragana && n == classKanji:
		return 0
	case p == classKanji && n == classHiragana:
		return 1
	case p == classKatakana || n == classKatakana:
		return 2
	case p != n:
		return 3
	default:
		return 4
	}
}

// noSplitBefore holds marks that must stay attached to the preceding
// character.
var noSplitBefore = map[rune]bool{
	'々': true,
	'ー': true,
	'・': true,
	'～': true,
	'…': true,
}

// splitParticles are the particles the long-sentence splitter breaks after,
// longest first so や/から style overlaps resolve correctly.
var splitParticles = []string{
	"から", "まで", "より",
	"は", "が", "を", "に", "で", "と", "も", "や",
}

var sentencePunct = map[rune]bool{
	'。': true,
	'！': true,
	'？': true,
}

// strippablePunct is removed from display text after timing adjustment.
// The pause comma 、 is kept because it reads naturally on screen.
var strippablePunct = map[rune]bool{
	'。': true,
	'！': true,
	'？': true,
	'，': true,
	'．': true,
}

// displayPunct marks characters that must never make up a whole line.
var displayPunct = map[rune]bool{
	'。': true,
	'！': true,
	'？': true,
	'、': true,
	'…': true,
	'，': true,
	'．': true,
}

func isPunctOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !displayPunct[r] {
			return false
		}
	}
	return true
}

func endsWithSentencePunct(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	return sentencePunct[runes[len(runes)-1]]
}
