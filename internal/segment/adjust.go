package segment

import (
	"log/slog"
	"math"
	"strings"

	"jimaku/internal/logging"
)

// Timing adjustment. Cue end times are pulled toward the next cue's start so
// text stays on screen while the narration pauses. Starts never move; they
// come straight from the aligner.

// AdjustOptions controls the end-time adjustment pass.
type AdjustOptions struct {
	// NextStartMargin is the gap kept before the next cue when the current
	// cue ends a sentence.
	NextStartMargin float64
	// LastCueExtension is added to a final cue that ends a sentence.
	LastCueExtension float64
	// FPS drives the one-frame gap used for cues that do not end a sentence.
	FPS float64
}

// AdjustTimings sets each cue's end relative to the following cue's start:
// a sentence-ending cue keeps NextStartMargin of silence, any other cue
// keeps a single frame. Ends are clamped so a cue never collapses below half
// a frame. The final cue gains LastCueExtension when it ends a sentence.
func AdjustTimings(entries []SubtitleEntry, opts AdjustOptions, logger *slog.Logger) []SubtitleEntry {
	if logger == nil {
		logger = logging.NewNop()
	}
	if len(entries) == 0 {
		return entries
	}
	frame := 1.0 / opts.FPS

	out := make([]SubtitleEntry, len(entries))
	copy(out, entries)

	for i := 0; i < len(out)-1; i++ {
		text := strings.TrimSpace(out[i].Text())
		margin := frame
		if endsWithSentencePunct(text) {
			margin = opts.NextStartMargin
		}

		candidate := out[i+1].Start - margin
		floor := out[i].Start + math.Max(1e-3, frame/2)
		if candidate < floor {
			candidate = floor
		}
		// Never push past the next cue's start, even for fragments that
		// share a sentence's timing.
		if candidate > out[i+1].Start {
			candidate = out[i+1].Start
		}

		if math.Abs(candidate-out[i].End) > 1e-6 {
			logger.Debug("adjusted cue end",
				logging.Int(logging.FieldCue, out[i].Index),
				logging.Float64("from", out[i].End),
				logging.Float64("to", candidate))
			out[i].End = candidate
		}
	}

	last := &out[len(out)-1]
	if endsWithSentencePunct(strings.TrimSpace(last.Text())) {
		last.End += opts.LastCueExtension
	}
	return out
}

// Gap optimization bounds: gaps inside this range read as dead air rather
// than an intentional pause, so they are tightened.
const (
	gapOptimizeMin = 0.5
	gapOptimizeMax = 1.5
	gapOptimizedTo = 0.3
)

// OptimizeGaps extends cues across awkward mid-length gaps. A gap between
// half a second and a second and a half is reduced to 0.3s by extending the
// earlier cue; shorter gaps are deliberate frame spacing and longer ones are
// real pauses, both left alone. Ends only grow here.
func OptimizeGaps(entries []SubtitleEntry, logger *slog.Logger) []SubtitleEntry {
	if logger == nil {
		logger = logging.NewNop()
	}
	out := make([]SubtitleEntry, len(entries))
	copy(out, entries)

	for i := 0; i < len(out)-1; i++ {
		gap := out[i+1].Start - out[i].End
		if gap < gapOptimizeMin || gap > gapOptimizeMax {
			continue
		}
		newEnd := out[i+1].Start - gapOptimizedTo
		if newEnd <= out[i].End {
			continue
		}
		logger.Debug("tightened gap",
			logging.Int(logging.FieldCue, out[i].Index),
			logging.Float64("gap", gap))
		out[i].End = newEnd
	}
	return out
}
