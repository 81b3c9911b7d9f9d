package segment

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"jimaku/internal/alignment"
)

func charsFor(text string, step float64) []alignment.CharTiming {
	var chars []alignment.CharTiming
	t := 0.0
	for _, r := range text {
		chars = append(chars, alignment.CharTiming{Char: string(r), Start: t, End: t + step})
		t += step
	}
	return chars
}

func TestSplitSentencesAtTerminator(t *testing.T) {
	text := "今日は晴れ。明日は雨。"
	section := alignment.SectionTiming{DisplayText: text, Chars: charsFor(text, 0.2)}

	sentences := SplitSentences(section, nil)
	if len(sentences) != 2 {
		t.Fatalf("sentence count: got %d, want 2", len(sentences))
	}
	if sentences[0].Text != "今日は晴れ。" {
		t.Fatalf("first sentence: got %q", sentences[0].Text)
	}
	if sentences[1].Text != "明日は雨。" {
		t.Fatalf("second sentence: got %q", sentences[1].Text)
	}
	if sentences[0].End > sentences[1].Start+1e-9 {
		t.Fatalf("sentence timing overlaps: %g > %g", sentences[0].End, sentences[1].Start)
	}
	if sentences[1].Start != 1.2 {
		t.Fatalf("second sentence start: got %g, want 1.2", sentences[1].Start)
	}
}

func TestSplitSentencesIgnoresTerminatorInsideQuotation(t *testing.T) {
	text := "「見てくれ。太陽は動いている」と言った。"
	section := alignment.SectionTiming{DisplayText: text, Chars: charsFor(text, 0.1)}

	sentences := SplitSentences(section, nil)
	if len(sentences) != 1 {
		t.Fatalf("quoted terminator must not split: got %d sentences", len(sentences))
	}
	if sentences[0].Text != text {
		t.Fatalf("sentence text: got %q", sentences[0].Text)
	}
}

func TestSplitSentencesSkipsInterSentenceWhitespace(t *testing.T) {
	text := "はい。　そうです。"
	section := alignment.SectionTiming{DisplayText: "はい。そうです。", Chars: charsFor(text, 0.1)}

	sentences := SplitSentences(section, nil)
	if len(sentences) != 2 {
		t.Fatalf("sentence count: got %d, want 2", len(sentences))
	}
	if strings.HasPrefix(sentences[1].Text, "　") {
		t.Fatalf("leading whitespace not skipped: %q", sentences[1].Text)
	}
	// Timing starts at そ, not at the skipped space.
	if sentences[1].Start != 0.4 {
		t.Fatalf("second sentence start: got %g, want 0.4", sentences[1].Start)
	}
}

func TestSplitSentencesPrefersDisplayText(t *testing.T) {
	tts := "きょうははれ。"
	section := alignment.SectionTiming{
		DisplayText: "今日は晴れ。",
		TTSText:     tts,
		Chars:       charsFor(tts, 0.1),
	}

	sentences := SplitSentences(section, nil)
	if len(sentences) != 1 {
		t.Fatalf("sentence count: got %d, want 1", len(sentences))
	}
	if sentences[0].Text != "今日は晴れ。" {
		t.Fatalf("display text not preferred: got %q", sentences[0].Text)
	}
	// Timing still comes from the aligned characters.
	if sentences[0].End != 0.7 {
		t.Fatalf("sentence end: got %g, want 0.7", sentences[0].End)
	}
}

func TestSplitSentencesFallsBackPastDisplayCoverage(t *testing.T) {
	tts := "はい。いいえ。"
	section := alignment.SectionTiming{
		DisplayText: "はい。",
		TTSText:     tts,
		Chars:       charsFor(tts, 0.1),
	}

	sentences := SplitSentences(section, nil)
	if len(sentences) != 2 {
		t.Fatalf("sentence count: got %d, want 2", len(sentences))
	}
	if sentences[0].Text != "はい。" {
		t.Fatalf("first sentence: got %q", sentences[0].Text)
	}
	if sentences[1].Text != "いいえ。" {
		t.Fatalf("fallback sentence: got %q", sentences[1].Text)
	}
}

func TestSplitSentencesWarnsOnCountMismatch(t *testing.T) {
	// Display text with more sentences than the aligned text is recoverable
	// but must surface as a warning, not a debug line.
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	tts := "はい。"
	section := alignment.SectionTiming{
		SectionID:   4,
		DisplayText: "はい。いいえ。",
		TTSText:     tts,
		Chars:       charsFor(tts, 0.1),
	}
	sentences := SplitSentences(section, logger)
	if len(sentences) != 1 {
		t.Fatalf("sentence count: got %d, want 1", len(sentences))
	}
	if !strings.Contains(buf.String(), "sentence counts differ") {
		t.Fatalf("expected count-mismatch warning, got %q", buf.String())
	}
}

func TestSplitSentencesEmptySection(t *testing.T) {
	if got := SplitSentences(alignment.SectionTiming{}, nil); got != nil {
		t.Fatalf("empty section should yield no sentences, got %d", len(got))
	}
}
