package alignment

// silenceThreshold is the leading-silence cutoff in seconds. Aligners pad
// sections with a little silence before the first phoneme; anything above
// this is treated as silence rather than timing jitter.
const silenceThreshold = 0.1

// Normalize subtracts a section's leading silence from every character so
// the first character starts at (near) zero. Sections whose first character
// already starts within the threshold, and empty sections, are returned
// unchanged. The input is not mutated.
func Normalize(section SectionTiming) SectionTiming {
	if len(section.Chars) == 0 {
		return section
	}
	lead := section.Chars[0].Start
	if lead <= silenceThreshold {
		return section
	}

	chars := make([]CharTiming, len(section.Chars))
	for i, c := range section.Chars {
		chars[i] = CharTiming{Char: c.Char, Start: c.Start - lead, End: c.End - lead}
	}
	section.Chars = chars
	return section
}

// NormalizeAll applies Normalize to each section.
func NormalizeAll(sections []SectionTiming) []SectionTiming {
	out := make([]SectionTiming, len(sections))
	for i, s := range sections {
		out[i] = Normalize(s)
	}
	return out
}
