package segment

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestSplitLongSentenceShortPassthrough(t *testing.T) {
	s := Sentence{Text: "短い文です。", Start: 1.0, End: 2.0}
	got := SplitLongSentence(s, 36)
	if len(got) != 1 || !reflect.DeepEqual(got[0], s) {
		t.Fatalf("short sentence must pass through unchanged: %+v", got)
	}
}

func TestSplitLongSentenceAtComma(t *testing.T) {
	// 50 runes with the pause comma at rune index 30.
	text := strings.Repeat("あ", 30) + "、" + strings.Repeat("い", 19)
	s := Sentence{Text: text, Start: 0, End: 5.0}

	got := SplitLongSentence(s, 36)
	if len(got) != 2 {
		t.Fatalf("fragment count: got %d, want 2", len(got))
	}
	if glyphLen(got[0].Text) != 31 {
		t.Fatalf("first fragment length: got %d, want 31", glyphLen(got[0].Text))
	}
	if !strings.HasSuffix(got[0].Text, "、") {
		t.Fatalf("comma must stay with first fragment: %q", got[0].Text)
	}
	for i, frag := range got {
		if glyphLen(frag.Text) > 36 {
			t.Fatalf("fragment %d exceeds cap: %d runes", i, glyphLen(frag.Text))
		}
	}
	// Timing interpolates by rune share: 31/50 of 5 seconds.
	if math.Abs(got[0].End-3.1) > 1e-9 {
		t.Fatalf("first fragment end: got %g, want 3.1", got[0].End)
	}
	if math.Abs(got[1].Start-3.1) > 1e-9 || math.Abs(got[1].End-5.0) > 1e-9 {
		t.Fatalf("second fragment timing: got [%g, %g]", got[1].Start, got[1].End)
	}
}

func TestSplitLongSentenceCommaAtCapStaysWithinCap(t *testing.T) {
	// A comma sitting exactly at the fragment cap must not be taken: keeping
	// it with the first fragment would produce a 37-rune fragment.
	text := strings.Repeat("あ", 36) + "、" + strings.Repeat("い", 13)
	got := SplitLongSentence(Sentence{Text: text, Start: 0, End: 10.0}, 36)

	var rebuilt strings.Builder
	for i, frag := range got {
		if glyphLen(frag.Text) > 36 {
			t.Fatalf("fragment %d exceeds cap: %d runes", i, glyphLen(frag.Text))
		}
		rebuilt.WriteString(frag.Text)
	}
	if rebuilt.String() != text {
		t.Fatal("fragments do not reassemble the original text")
	}
}

func TestSplitLongSentenceCommaJustInsideCap(t *testing.T) {
	// A comma at rune index 35 is still admissible: the split at 36 fills
	// the cap exactly.
	text := strings.Repeat("あ", 35) + "、" + strings.Repeat("い", 13)
	got := SplitLongSentence(Sentence{Text: text, Start: 0, End: 10.0}, 36)
	if len(got) != 2 {
		t.Fatalf("fragment count: got %d, want 2", len(got))
	}
	if glyphLen(got[0].Text) != 36 || !strings.HasSuffix(got[0].Text, "、") {
		t.Fatalf("first fragment: %d runes, %q", glyphLen(got[0].Text), got[0].Text)
	}
}

func TestSplitLongSentenceAfterParticle(t *testing.T) {
	text := strings.Repeat("あ", 14) + "から" + strings.Repeat("い", 24)
	got := SplitLongSentence(Sentence{Text: text, Start: 0, End: 4.0}, 36)
	if len(got) != 2 {
		t.Fatalf("fragment count: got %d, want 2", len(got))
	}
	if !strings.HasSuffix(got[0].Text, "から") {
		t.Fatalf("expected split after particle: %q", got[0].Text)
	}
	if glyphLen(got[0].Text) != 16 {
		t.Fatalf("first fragment length: got %d, want 16", glyphLen(got[0].Text))
	}
}

func TestSplitLongSentenceAtScriptTransition(t *testing.T) {
	text := strings.Repeat("あ", 18) + strings.Repeat("漢", 22)
	got := SplitLongSentence(Sentence{Text: text, Start: 0, End: 4.0}, 36)
	if len(got) != 2 {
		t.Fatalf("fragment count: got %d, want 2", len(got))
	}
	if glyphLen(got[0].Text) != 18 {
		t.Fatalf("expected split at hiragana to kanji transition: got %d runes", glyphLen(got[0].Text))
	}
	if !strings.HasPrefix(got[1].Text, "漢") {
		t.Fatalf("second fragment should start at kanji: %q", got[1].Text)
	}
}

func TestSplitLongSentenceForcedMidpoint(t *testing.T) {
	text := strings.Repeat("あ", 50)
	got := SplitLongSentence(Sentence{Text: text, Start: 0, End: 10.0}, 36)
	if len(got) != 2 {
		t.Fatalf("fragment count: got %d, want 2", len(got))
	}
	if glyphLen(got[0].Text) != 18 {
		t.Fatalf("forced split: got %d runes, want 18", glyphLen(got[0].Text))
	}
}

func TestSplitLongSentencePathologicalInput(t *testing.T) {
	// A very long sentence with no natural boundaries must still terminate
	// and respect the cap.
	text := strings.Repeat("あ", 10000)
	s := Sentence{Text: text, Start: 0, End: 600.0}

	got := SplitLongSentence(s, 36)
	var rebuilt strings.Builder
	prevEnd := s.Start
	for i, frag := range got {
		if glyphLen(frag.Text) > 36 {
			t.Fatalf("fragment %d exceeds cap: %d runes", i, glyphLen(frag.Text))
		}
		if frag.Start < prevEnd-1e-9 {
			t.Fatalf("fragment %d starts before previous end", i)
		}
		prevEnd = frag.End
		rebuilt.WriteString(frag.Text)
	}
	if rebuilt.String() != text {
		t.Fatal("fragments do not reassemble the original text")
	}
	if math.Abs(got[len(got)-1].End-600.0) > 1e-9 {
		t.Fatalf("last fragment end: got %g, want 600", got[len(got)-1].End)
	}
}
