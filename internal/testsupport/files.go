package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// TimingSection is a minimal aligner section used to build fixture files.
type TimingSection struct {
	SectionID   int       `json:"section_id"`
	DisplayText string    `json:"display_text"`
	TTSText     string    `json:"tts_text,omitempty"`
	Characters  []string  `json:"characters"`
	StartTimes  []float64 `json:"character_start_times_seconds"`
	EndTimes    []float64 `json:"character_end_times_seconds"`
	Offset      float64   `json:"offset"`
}

// NewTimingSection builds a section where every character of text occupies
// step seconds, starting at zero.
func NewTimingSection(id int, text string, step, offset float64) TimingSection {
	section := TimingSection{SectionID: id, DisplayText: text, Offset: offset}
	t := 0.0
	for _, r := range text {
		section.Characters = append(section.Characters, string(r))
		section.StartTimes = append(section.StartTimes, t)
		section.EndTimes = append(section.EndTimes, t+step)
		t += step
	}
	return section
}

// WriteTimingFile writes sections as an aligner JSON document under a temp
// directory and returns its path.
func WriteTimingFile(t testing.TB, sections ...TimingSection) string {
	t.Helper()

	data, err := json.Marshal(sections)
	if err != nil {
		t.Fatalf("marshal timing fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "timing.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write timing fixture: %v", err)
	}
	return path
}
