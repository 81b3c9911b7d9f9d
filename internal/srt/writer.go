package srt

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"jimaku/internal/segment"
)

// FormatTimestamp renders seconds as the SubRip HH:MM:SS,mmm form.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	millis := int64(math.Round(seconds * 1000))
	h := millis / 3600000
	millis -= h * 3600000
	m := millis / 60000
	millis -= m * 60000
	s := millis / 1000
	ms := millis - s*1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// Render produces the full SRT document for a cue list.
func Render(entries []segment.SubtitleEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(fmt.Sprintf("%d\n", entry.Index))
		b.WriteString(FormatTimestamp(entry.Start))
		b.WriteString(" --> ")
		b.WriteString(FormatTimestamp(entry.End))
		b.WriteByte('\n')
		b.WriteString(entry.Line1)
		b.WriteByte('\n')
		if entry.Line2 != "" {
			b.WriteString(entry.Line2)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFile renders entries and writes them to path, creating parent
// directories as needed.
func WriteFile(path string, entries []segment.SubtitleEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(Render(entries)), 0o644); err != nil {
		return fmt.Errorf("write srt %s: %w", path, err)
	}
	return nil
}
