package segment

// SubtitleEntry is one timed cue ready for rendering. Line3 is transient:
// it can exist between wrapping and three-line repair but never reaches the
// serializer.
type SubtitleEntry struct {
	Index int
	Start float64
	End   float64
	Line1 string
	Line2 string
	Line3 string
}

// Text joins the cue's lines without separators.
func (e SubtitleEntry) Text() string {
	return e.Line1 + e.Line2 + e.Line3
}

// Duration returns the cue's display time in seconds.
func (e SubtitleEntry) Duration() float64 {
	return e.End - e.Start
}

// Renumber assigns 1-based indices in order.
func Renumber(entries []SubtitleEntry) []SubtitleEntry {
	for i := range entries {
		entries[i].Index = i + 1
	}
	return entries
}
