package alignment

// CharTiming is one aligned glyph with its start and end in seconds,
// relative to the section start.
type CharTiming struct {
	Char  string
	Start float64
	End   float64
}

// SectionTiming holds the aligner output for one script section.
type SectionTiming struct {
	SectionID   int
	DisplayText string
	TTSText     string
	Chars       []CharTiming
	// Offset is the section's absolute position in the full timeline.
	Offset float64
}

// Duration returns the span from the first character start to the last
// character end. Empty sections report zero.
func (s *SectionTiming) Duration() float64 {
	if len(s.Chars) == 0 {
		return 0
	}
	return s.Chars[len(s.Chars)-1].End - s.Chars[0].Start
}

// Text concatenates the aligned characters.
func (s *SectionTiming) Text() string {
	var n int
	for _, c := range s.Chars {
		n += len(c.Char)
	}
	buf := make([]byte, 0, n)
	for _, c := range s.Chars {
		buf = append(buf, c.Char...)
	}
	return string(buf)
}
