package srt

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp parses an SRT timestamp into seconds. Both the comma and
// period millisecond separators are accepted.
func ParseTimestamp(ts string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(ts), ".", ",")
	parts := strings.Split(normalized, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed timestamp %q", ts)
	}
	secParts := strings.Split(parts[2], ",")
	if len(secParts) != 2 {
		return 0, fmt.Errorf("malformed timestamp %q", ts)
	}

	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	s, err3 := strconv.Atoi(secParts[0])
	ms, err4 := strconv.Atoi(secParts[1])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return 0, fmt.Errorf("malformed timestamp %q", ts)
	}
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000, nil
}

// Validate checks rendered SRT content and returns a list of human-readable
// issues. An empty list means the content looks structurally sound.
func Validate(content string) []string {
	var issues []string
	blocks := strings.Split(strings.TrimSpace(content), "\n\n")
	if strings.TrimSpace(content) == "" {
		return []string{"document is empty"}
	}

	prevEnd := -1.0
	for i, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 {
			issues = append(issues, fmt.Sprintf("block %d: too few lines", i+1))
			continue
		}

		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			issues = append(issues, fmt.Sprintf("block %d: bad index %q", i+1, lines[0]))
		} else if index != i+1 {
			issues = append(issues, fmt.Sprintf("block %d: index %d out of sequence", i+1, index))
		}

		timeParts := strings.Split(lines[1], " --> ")
		if len(timeParts) != 2 {
			issues = append(issues, fmt.Sprintf("block %d: bad timing line %q", i+1, lines[1]))
			continue
		}
		start, startErr := ParseTimestamp(timeParts[0])
		end, endErr := ParseTimestamp(timeParts[1])
		if startErr != nil || endErr != nil {
			issues = append(issues, fmt.Sprintf("block %d: unparseable timestamps %q", i+1, lines[1]))
			continue
		}
		if end < start {
			issues = append(issues, fmt.Sprintf("block %d: ends before it starts", i+1))
		}
		if prevEnd > start+1e-6 {
			issues = append(issues, fmt.Sprintf("block %d: overlaps previous block", i+1))
		}
		prevEnd = end

		text := lines[2:]
		if len(text) > 2 {
			issues = append(issues, fmt.Sprintf("block %d: more than two text lines", i+1))
		}
		for _, line := range text {
			if strings.TrimSpace(line) == "" {
				issues = append(issues, fmt.Sprintf("block %d: empty text line", i+1))
			}
		}
	}
	return issues
}
