// Package segment turns character-timed Japanese text into display-ready
// subtitle cues. The pipeline splits each section into sentences, breaks
// long sentences at natural boundaries, handles 「」 quotations, wraps
// fragments into at most two lines, repairs three-line spillover, extends
// cue timing toward the following cue, and finally strips display
// punctuation. Each stage is a pure transformation over cue or sentence
// values so stages can be tested in isolation.
package segment
