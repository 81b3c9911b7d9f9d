package segment

// Punctuation stripping. Sentence terminators guide segmentation and timing
// but look heavy on screen, so they are removed after timing adjustment,
// except inside quotations where they belong to the quoted speech.

// runePosition records where an original rune landed after stripping: kept
// at a new index, or removed entirely.
type runePosition struct {
	Kept  bool
	Index int
}

// StripPunctuation removes 。！？，． outside 「」 and 『』 quotations from
// every cue, re-splits each cue at the position its line break mapped to,
// drops cues left empty, and renumbers from 1. The pause comma 、 is kept.
// Applying it twice is a no-op.
func StripPunctuation(entries []SubtitleEntry) []SubtitleEntry {
	out := make([]SubtitleEntry, 0, len(entries))
	for _, entry := range entries {
		line1 := []rune(entry.Line1)
		line2 := []rune(entry.Line2)
		combined := append(append([]rune{}, line1...), line2...)

		stripped, positions := stripRunes(combined)
		splitAt := mappedSplit(positions, len(line1))

		entry.Line1 = string(stripped[:splitAt])
		entry.Line2 = string(stripped[splitAt:])
		if entry.Line1 == "" && entry.Line2 != "" {
			entry.Line1, entry.Line2 = entry.Line2, ""
		}
		if entry.Line1 == "" {
			continue
		}
		out = append(out, entry)
	}
	return Renumber(out)
}

// stripRunes removes display punctuation outside quotations and returns the
// surviving runes along with a per-rune position map.
func stripRunes(runes []rune) ([]rune, []runePosition) {
	out := make([]rune, 0, len(runes))
	positions := make([]runePosition, len(runes))
	inKagi := false
	inDouble := false

	for i, r := range runes {
		switch r {
		case '「':
			inKagi = true
		case '」':
			inKagi = false
		case '『':
			inDouble = true
		case '』':
			inDouble = false
		}
		if strippablePunct[r] && !inKagi && !inDouble {
			positions[i] = runePosition{Kept: false}
			continue
		}
		positions[i] = runePosition{Kept: true, Index: len(out)}
		out = append(out, r)
	}
	return out, positions
}

// mappedSplit translates the original line break position into the stripped
// text. The break lands after the last kept rune of the original first line.
func mappedSplit(positions []runePosition, line1Len int) int {
	for i := line1Len - 1; i >= 0; i-- {
		if positions[i].Kept {
			return positions[i].Index + 1
		}
	}
	return 0
}
