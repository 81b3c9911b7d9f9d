package segment

import "testing"

func TestRepairThreeLinesMovesOverflowForward(t *testing.T) {
	entries := []SubtitleEntry{
		{Index: 1, Line1: "「ながいながい", Line2: "せりふのつづき", Line3: "おわり」"},
		{Index: 2, Line1: "と言った"},
	}
	got := RepairThreeLines(entries, nil)
	if got[0].Line3 != "" {
		t.Fatalf("line3 should be cleared: %q", got[0].Line3)
	}
	if got[1].Line1 != "おわり」と言った" {
		t.Fatalf("overflow not prepended to next cue: %q", got[1].Line1)
	}
	// Input untouched.
	if entries[0].Line3 == "" {
		t.Fatal("repair mutated its input")
	}
}

func TestRepairThreeLinesCascades(t *testing.T) {
	entries := []SubtitleEntry{
		{Index: 1, Line1: "「あ", Line3: "い」"},
		{Index: 2, Line1: "「う", Line3: "え」"},
		{Index: 3, Line1: "お"},
	}
	got := RepairThreeLines(entries, nil)
	if got[1].Line1 != "い」「う" {
		t.Fatalf("second cue: got %q", got[1].Line1)
	}
	if got[2].Line1 != "え」お" {
		t.Fatalf("third cue: got %q", got[2].Line1)
	}
}

func TestRepairThreeLinesLeftoverAppendsToFinalCue(t *testing.T) {
	entries := []SubtitleEntry{
		{Index: 1, Line1: "「とちゅうで", Line3: "きれた」"},
	}
	got := RepairThreeLines(entries, nil)
	if got[0].Line1 != "「とちゅうできれた」" {
		t.Fatalf("leftover not appended: %q", got[0].Line1)
	}
	if got[0].Line3 != "" {
		t.Fatalf("line3 should be cleared: %q", got[0].Line3)
	}
}

func TestRepairThreeLinesNoOpWithoutThirdLines(t *testing.T) {
	entries := []SubtitleEntry{
		{Index: 1, Line1: "ふつうの", Line2: "キュー"},
		{Index: 2, Line1: "もうひとつ"},
	}
	got := RepairThreeLines(entries, nil)
	for i := range got {
		if got[i] != entries[i] {
			t.Fatalf("cue %d changed: %+v", i, got[i])
		}
	}
}
