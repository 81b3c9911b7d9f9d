package srt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"jimaku/internal/segment"
)

// TimingDocument is the JSON artifact describing the final cue timing.
type TimingDocument struct {
	SubtitleCount int         `json:"subtitle_count"`
	TotalDuration float64     `json:"total_duration"`
	Subtitles     []TimingCue `json:"subtitles"`
}

// TimingCue is one cue's entry in the timing document.
type TimingCue struct {
	Index     int     `json:"index"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Duration  float64 `json:"duration"`
	TextLine1 string  `json:"text_line1"`
	TextLine2 string  `json:"text_line2"`
}

// BuildTimingDocument assembles the timing artifact from a cue list.
func BuildTimingDocument(entries []segment.SubtitleEntry) TimingDocument {
	doc := TimingDocument{
		SubtitleCount: len(entries),
		Subtitles:     make([]TimingCue, 0, len(entries)),
	}
	for _, entry := range entries {
		doc.Subtitles = append(doc.Subtitles, TimingCue{
			Index:     entry.Index,
			StartTime: entry.Start,
			EndTime:   entry.End,
			Duration:  entry.Duration(),
			TextLine1: entry.Line1,
			TextLine2: entry.Line2,
		})
	}
	if len(entries) > 0 {
		doc.TotalDuration = entries[len(entries)-1].End
	}
	return doc
}

// WriteTimingJSON writes the timing artifact to path.
func WriteTimingJSON(path string, entries []segment.SubtitleEntry) error {
	doc := BuildTimingDocument(entries)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode timing json: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write timing json %s: %w", path, err)
	}
	return nil
}
