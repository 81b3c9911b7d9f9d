package segment

import (
	"log/slog"
	"strings"

	"jimaku/internal/logging"
)

// Three-line repair. Quotation bracket re-attachment can push a wrapped cue
// to a third line. The overflow is folded forward: a cue's third line moves
// to the front of the next cue's first line, cascading as needed.

// RepairThreeLines folds third lines forward through the cue list. The fold
// only engages for cues whose text carries 「 or 」; a third line on a cue
// without quotation marks indicates a wrapping bug and is folded anyway with
// a warning. Carry left over after the last cue is appended to that cue's
// first line.
func RepairThreeLines(entries []SubtitleEntry, logger *slog.Logger) []SubtitleEntry {
	if logger == nil {
		logger = logging.NewNop()
	}

	out := make([]SubtitleEntry, len(entries))
	copy(out, entries)

	carry := ""
	for i := range out {
		if carry != "" {
			out[i].Line1 = carry + out[i].Line1
			carry = ""
		}
		if out[i].Line3 == "" {
			continue
		}
		combined := out[i].Text()
		if !strings.ContainsAny(combined, "「」") {
			logger.Warn("third line on cue without quotation, folding forward",
				logging.Int(logging.FieldCue, out[i].Index))
		}
		carry = out[i].Line3
		out[i].Line3 = ""
	}

	if carry != "" && len(out) > 0 {
		last := &out[len(out)-1]
		last.Line1 += carry
		logger.Warn("leftover third-line text appended to final cue",
			logging.Int(logging.FieldCue, last.Index),
			logging.String("text", carry))
	}
	return out
}
