package alignment

import (
	"log/slog"
	"strings"

	"jimaku/internal/logging"
)

// StripQuotedNewlines removes layout newlines that fall inside 「」
// quotations. Script text keeps quotations readable by breaking them across
// lines, but those breaks are presentation only; leaving them in would make
// the segmenter treat a single quoted utterance as several. Timing slots for
// removed characters are dropped along with the characters.
func StripQuotedNewlines(section SectionTiming, logger *slog.Logger) SectionTiming {
	if logger == nil {
		logger = logging.NewNop()
	}

	removed := 0
	inQuote := false
	chars := make([]CharTiming, 0, len(section.Chars))
	for _, c := range section.Chars {
		switch c.Char {
		case "「":
			inQuote = true
		case "」":
			inQuote = false
		case "\n", "\r\n", "\r":
			if inQuote {
				removed++
				continue
			}
		}
		chars = append(chars, c)
	}

	if removed == 0 {
		return section
	}

	section.Chars = chars
	section.DisplayText = stripQuotedNewlinesText(section.DisplayText)
	section.TTSText = stripQuotedNewlinesText(section.TTSText)

	logger.Debug("removed newlines inside quotation",
		logging.Int(logging.FieldSection, section.SectionID),
		logging.Int("removed", removed))
	return section
}

func stripQuotedNewlinesText(text string) string {
	if !strings.ContainsRune(text, '「') {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	inQuote := false
	for _, r := range text {
		switch r {
		case '「':
			inQuote = true
		case '」':
			inQuote = false
		case '\n', '\r':
			if inQuote {
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
