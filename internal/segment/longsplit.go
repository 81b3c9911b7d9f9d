package segment

import "strings"

// Long-sentence splitting. Sentences longer than the fragment cap are broken
// at the most natural available boundary: a pause comma first, then a
// particle, then a script transition, and as a last resort the midpoint.

const (
	commaScanFloor    = 20
	boundaryScanFloor = 16
	boundaryScanCeil  = 20
)

// SplitLongSentence breaks sentence into fragments of at most maxChars
// runes. Fragment timing is interpolated linearly by rune-count share of the
// sentence's duration; character-level timing is not carried past this
// stage. Sentences within the cap are returned as a single fragment.
func SplitLongSentence(sentence Sentence, maxChars int) []Sentence {
	runes := []rune(sentence.Text)
	if len(runes) <= maxChars {
		return []Sentence{sentence}
	}

	origLen := len(runes)
	duration := sentence.End - sentence.Start
	timeAt := func(pos int) float64 {
		return sentence.Start + duration*float64(pos)/float64(origLen)
	}

	var fragments []Sentence
	consumed := 0
	remaining := runes
	for len(remaining) > maxChars {
		idx := splitIndex(remaining, maxChars)
		fragments = append(fragments, Sentence{
			Text:  string(remaining[:idx]),
			Start: timeAt(consumed),
			End:   timeAt(consumed + idx),
		})
		consumed += idx
		remaining = remaining[idx:]
	}
	fragments = append(fragments, Sentence{
		Text:  string(remaining),
		Start: timeAt(consumed),
		End:   sentence.End,
	})
	return fragments
}

// splitIndex picks where to cut a too-long rune sequence. The returned index
// is the length of the first fragment; it is always in (0, maxChars].
func splitIndex(runes []rune, maxChars int) int {
	// Pass 1: rightmost pause comma in range, kept with the first fragment.
	// The comma at maxChars-1 is the last admissible one: splitting keeps it
	// with the first fragment, so a comma at maxChars would breach the cap.
	hi := maxChars - 1
	if hi > len(runes)-1 {
		hi = len(runes) - 1
	}
	for p := hi; p >= commaScanFloor && p >= 0; p-- {
		if runes[p] == '、' {
			return p + 1
		}
	}

	// Pass 2: a particle ending inside the boundary window.
	for end := boundaryScanFloor; end <= boundaryScanCeil && end < len(runes); end++ {
		head := string(runes[:end])
		for _, particle := range splitParticles {
			if strings.HasSuffix(head, particle) {
				return end
			}
		}
	}

	// Pass 3 and 4: script transitions inside the window.
	for i := boundaryScanFloor; i <= boundaryScanCeil && i < len(runes); i++ {
		if classify(runes[i-1]) == classHiragana && classify(runes[i]) == classKanji {
			return i
		}
	}
	for i := boundaryScanFloor; i <= boundaryScanCeil && i < len(runes); i++ {
		if classify(runes[i-1]) == classKanji && classify(runes[i]) == classHiragana {
			return i
		}
	}

	// Pass 5: forced midpoint.
	idx := maxChars / 2
	if idx < 1 {
		idx = 1
	}
	return idx
}
