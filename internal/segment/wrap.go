package segment

// Line wrapping. A fragment becomes one or two display lines under a strict
// character cap. Split points are chosen by pause commas first, then script
// transitions, with a forced fallback that works outward from the midpoint.

import "jimaku/internal/textutil"

// Lines is the display form of one fragment. Line3 only appears when a
// fragment grew past two lines' capacity (quotation bracket re-attachment);
// it is folded away by the three-line repair stage before serialization.
type Lines struct {
	Line1 string
	Line2 string
	Line3 string
}

const wrapWindow = 5

// WrapLines breaks text into at most two lines of absoluteMax runes,
// aiming for recommendedMax per line. Text at or under recommendedMax stays
// on a single line. A punctuation-only line is merged away rather than
// displayed on its own.
func WrapLines(text string, recommendedMax, absoluteMax int) Lines {
	runes := []rune(text)
	if len(runes) <= recommendedMax {
		return Lines{Line1: text}
	}

	idx := wrapIndex(runes, recommendedMax, absoluteMax)
	line1 := string(runes[:idx])
	rest := runes[idx:]

	var line2, line3 string
	if len(rest) <= absoluteMax {
		line2 = string(rest)
	} else {
		j := wrapIndex(rest, recommendedMax, absoluteMax)
		line2 = string(rest[:j])
		line3 = string(rest[j:])
	}

	return mergePunctOnlyLines(Lines{Line1: line1, Line2: line2, Line3: line3}, absoluteMax)
}

// wrapIndex picks the split position for a rune sequence that does not fit
// on one line. The returned index is always in [1, absoluteMax].
func wrapIndex(runes []rune, recommendedMax, absoluteMax int) int {
	if idx, ok := commaWrapIndex(runes, recommendedMax, absoluteMax); ok {
		return idx
	}
	if idx, ok := boundaryWrapIndex(runes, recommendedMax, absoluteMax); ok {
		return idx
	}
	return forcedWrapIndex(runes, absoluteMax)
}

// commaWrapIndex splits after a pause comma, choosing the comma whose two
// lines deviate least from the recommended length. Both lines must fit the
// absolute cap.
func commaWrapIndex(runes []rune, recommendedMax, absoluteMax int) (int, bool) {
	best, bestScore := -1, 0
	for p, r := range runes {
		if r != '、' {
			continue
		}
		idx := p + 1
		l1, l2 := idx, len(runes)-idx
		if l1 < 1 || l2 < 1 || l1 > absoluteMax || l2 > absoluteMax {
			continue
		}
		score := abs(l1-recommendedMax) + abs(l2-recommendedMax)
		if best < 0 || score < bestScore {
			best, bestScore = idx, score
		}
	}
	return best, best > 0
}

// boundaryWrapIndex scans positions near the recommended length and scores
// each by script-transition quality plus length deviation. A split directly
// before a repetition or elongation mark is never taken.
func boundaryWrapIndex(runes []rune, recommendedMax, absoluteMax int) (int, bool) {
	lo := recommendedMax - wrapWindow
	if lo < 1 {
		lo = 1
	}
	hi := recommendedMax + wrapWindow
	if hi > absoluteMax {
		hi = absoluteMax
	}
	if hi > len(runes)-1 {
		hi = len(runes) - 1
	}

	best, bestScore := -1, 0
	for i := lo; i <= hi; i++ {
		if noSplitBefore[runes[i]] {
			continue
		}
		if len(runes)-i > absoluteMax {
			// Leaving more than a line's worth for line2 defeats the split.
			continue
		}
		rank := transitionRank(runes[i-1], runes[i])
		score := rank*10 + abs(i-recommendedMax) + abs(len(runes)-i-recommendedMax)
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	return best, best > 0
}

// forcedWrapIndex works outward from the midpoint looking for a position
// just after punctuation or at a script transition, falling back to the
// capped midpoint.
func forcedWrapIndex(runes []rune, absoluteMax int) int {
	mid := len(runes) / 2
	if mid > absoluteMax {
		mid = absoluteMax
	}
	if mid < 1 {
		mid = 1
	}

	for off := 0; off <= wrapWindow; off++ {
		for _, j := range []int{mid + off, mid - off} {
			if j < 1 || j >= len(runes) || j > absoluteMax {
				continue
			}
			if len(runes)-j > absoluteMax && len(runes) <= 2*absoluteMax {
				// The remainder would overflow line2 even though a
				// cap-respecting split exists.
				continue
			}
			if noSplitBefore[runes[j]] {
				continue
			}
			prev := runes[j-1]
			if prev == '、' || sentencePunct[prev] || classify(prev) != classify(runes[j]) {
				return j
			}
		}
	}
	return mid
}

// mergePunctOnlyLines folds a punctuation-only line into its neighbor so a
// cue never shows a line of bare punctuation.
func mergePunctOnlyLines(lines Lines, absoluteMax int) Lines {
	if lines.Line3 != "" && isPunctOnly(lines.Line3) {
		merged := lines.Line2 + lines.Line3
		if glyphLen(merged) <= absoluteMax {
			lines.Line2 = merged
		}
		lines.Line3 = ""
	}
	if lines.Line2 != "" && isPunctOnly(lines.Line2) {
		merged := lines.Line1 + lines.Line2
		if glyphLen(merged) <= absoluteMax {
			lines.Line1 = merged
		}
		lines.Line2 = lines.Line3
		lines.Line3 = ""
	}
	if lines.Line1 != "" && isPunctOnly(lines.Line1) && lines.Line2 != "" {
		merged := lines.Line1 + lines.Line2
		if glyphLen(merged) <= absoluteMax {
			lines.Line1 = merged
		} else {
			lines.Line1 = lines.Line2
		}
		lines.Line2 = lines.Line3
		lines.Line3 = ""
	}
	return lines
}

func glyphLen(s string) int {
	return textutil.GlyphCount(s)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
