package segment

import (
	"log/slog"
	"strings"
	"unicode"

	"jimaku/internal/alignment"
	"jimaku/internal/logging"
)

// Sentence is one timed sentence extracted from a section. Transformations
// never mutate a Sentence in place; they produce new values.
type Sentence struct {
	Text  string
	Start float64
	End   float64
	Chars []alignment.CharTiming
}

// SplitSentences breaks a section's character stream into sentences at 。
// boundaries, ignoring terminators inside 「」 quotations. Each sentence's
// timing comes from its own characters only. When the display text yields
// the same number of sentences as the aligned TTS text, the display wording
// is preferred; sentences past the display coverage fall back to the TTS
// wording with a warning.
func SplitSentences(section alignment.SectionTiming, logger *slog.Logger) []Sentence {
	if logger == nil {
		logger = logging.NewNop()
	}

	groups := splitCharGroups(section.Chars)
	if len(groups) == 0 {
		return nil
	}

	displaySentences := splitTextSentences(section.DisplayText)

	sentences := make([]Sentence, 0, len(groups))
	for i, group := range groups {
		text := joinChars(group)
		if i < len(displaySentences) {
			text = displaySentences[i]
		} else if section.DisplayText != "" {
			logger.Warn("display text covers fewer sentences than aligned text, falling back",
				logging.Int(logging.FieldSection, section.SectionID),
				logging.Int(logging.FieldSentence, i+1))
		}
		sentences = append(sentences, Sentence{
			Text:  text,
			Start: group[0].Start,
			End:   group[len(group)-1].End,
			Chars: group,
		})
	}

	if n := len(displaySentences); n > 0 && n != len(groups) {
		logger.Warn("display and aligned sentence counts differ",
			logging.Int(logging.FieldSection, section.SectionID),
			logging.Int("display_sentences", n),
			logging.Int("aligned_sentences", len(groups)))
	}

	return sentences
}

// splitCharGroups partitions the timed characters into sentences. The 。
// terminator stays with its sentence; whitespace between sentences is
// dropped.
func splitCharGroups(chars []alignment.CharTiming) [][]alignment.CharTiming {
	var groups [][]alignment.CharTiming
	var current []alignment.CharTiming
	inQuote := false

	for _, c := range chars {
		r := firstRune(c.Char)
		if len(current) == 0 && isSpaceChar(r) {
			continue
		}

		current = append(current, c)
		switch r {
		case '「':
			inQuote = true
		case '」':
			inQuote = false
		case '。':
			if !inQuote {
				groups = append(groups, current)
				current = nil
			}
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// splitTextSentences applies the same sentence boundaries to plain text.
func splitTextSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var sentences []string
	var current []rune
	inQuote := false

	for _, r := range text {
		if len(current) == 0 && isSpaceChar(r) {
			continue
		}
		current = append(current, r)
		switch r {
		case '「':
			inQuote = true
		case '」':
			inQuote = false
		case '。':
			if !inQuote {
				sentences = append(sentences, string(current))
				current = nil
			}
		}
	}
	if len(current) > 0 {
		sentences = append(sentences, string(current))
	}
	return sentences
}

func joinChars(chars []alignment.CharTiming) string {
	var b strings.Builder
	for _, c := range chars {
		b.WriteString(c.Char)
	}
	return b.String()
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func isSpaceChar(r rune) bool {
	return unicode.IsSpace(r) || r == '　'
}
