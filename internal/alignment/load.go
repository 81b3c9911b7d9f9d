package alignment

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// sectionPayload mirrors the aligner JSON. Older aligner builds used shorter
// key names, so most fields carry an alias that is merged during decode.
type sectionPayload struct {
	SectionID   int       `json:"section_id"`
	DisplayText string    `json:"display_text"`
	Text        string    `json:"text"`
	TTSText     string    `json:"tts_text"`
	Characters  []string  `json:"characters"`
	StartTimes  []float64 `json:"character_start_times_seconds"`
	EndTimes    []float64 `json:"character_end_times_seconds"`
	StartsAlias []float64 `json:"char_start_times"`
	EndsAlias   []float64 `json:"char_end_times"`
	Offset      float64   `json:"offset"`
}

type documentPayload struct {
	Sections []sectionPayload `json:"sections"`
}

// LoadFile reads an aligner timing document from path. Both legacy shapes
// are accepted: a bare JSON array of sections, or an object with a
// "sections" key.
func LoadFile(path string) ([]SectionTiming, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read timing file: %w", err)
	}
	sections, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse timing file %s: %w", path, err)
	}
	return sections, nil
}

// Parse decodes aligner timing JSON.
func Parse(data []byte) ([]SectionTiming, error) {
	var payloads []sectionPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		var doc documentPayload
		if docErr := json.Unmarshal(data, &doc); docErr != nil {
			return nil, fmt.Errorf("timing document is neither a section array nor a sections object: %w", err)
		}
		payloads = doc.Sections
	}

	sections := make([]SectionTiming, 0, len(payloads))
	for i, p := range payloads {
		section, err := p.toSection()
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		sections = append(sections, section)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Offset < sections[j].Offset
	})
	return sections, nil
}

func (p sectionPayload) toSection() (SectionTiming, error) {
	starts := p.StartTimes
	if len(starts) == 0 {
		starts = p.StartsAlias
	}
	ends := p.EndTimes
	if len(ends) == 0 {
		ends = p.EndsAlias
	}

	if len(p.Characters) != len(starts) || len(p.Characters) != len(ends) {
		return SectionTiming{}, fmt.Errorf(
			"character and timing array lengths disagree: %d characters, %d starts, %d ends",
			len(p.Characters), len(starts), len(ends))
	}

	display := p.DisplayText
	if display == "" {
		display = p.Text
	}

	chars := make([]CharTiming, len(p.Characters))
	for i, ch := range p.Characters {
		if ends[i] < starts[i] {
			return SectionTiming{}, fmt.Errorf("character %d ends before it starts (%g < %g)", i, ends[i], starts[i])
		}
		chars[i] = CharTiming{Char: ch, Start: starts[i], End: ends[i]}
	}

	return SectionTiming{
		SectionID:   p.SectionID,
		DisplayText: display,
		TTSText:     p.TTSText,
		Chars:       chars,
		Offset:      p.Offset,
	}, nil
}
