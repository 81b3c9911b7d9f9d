package segment

import (
	"log/slog"
	"strings"

	"jimaku/internal/logging"
)

// Quotation handling. A sentence containing a 「...」 span is fragmented
// around the quotation so the quoted speech is never torn apart mid-bracket:
// short quotations stay atomic, long ones are split internally with the
// brackets re-attached to the outermost fragments.

// AnalyzeQuotation fragments a sentence around its first 「...」 span. It
// returns ok=false when the sentence has no quotation or the brackets are
// unbalanced, in which case the caller should fall back to plain
// long-sentence splitting. Fragments share the sentence's start and end
// times; finer timing is not re-derived for quoted speech.
func AnalyzeQuotation(sentence Sentence, threshold, maxChars int, logger *slog.Logger) ([]Sentence, bool) {
	if logger == nil {
		logger = logging.NewNop()
	}

	runes := []rune(sentence.Text)
	open := -1
	for i, r := range runes {
		if r == '「' {
			open = i
			break
		}
	}
	if open < 0 {
		return nil, false
	}
	closing := -1
	for i := open + 1; i < len(runes); i++ {
		if runes[i] == '」' {
			closing = i
			break
		}
	}
	if closing < 0 {
		logger.Debug("unbalanced quotation brackets, skipping quotation handling",
			logging.String("text", sentence.Text))
		return nil, false
	}

	before := string(runes[:open])
	inner := string(runes[open+1 : closing])
	after := string(runes[closing+1:])

	innerLen := 0
	for _, r := range inner {
		if r != '\n' && r != '\r' {
			innerLen++
		}
	}

	var texts []string
	texts = appendFragmentTexts(texts, before, maxChars)

	if innerLen <= threshold {
		texts = append(texts, "「"+inner+"」")
	} else {
		innerParts := splitTextRuns(inner, maxChars)
		innerParts[0] = "「" + innerParts[0]
		innerParts[len(innerParts)-1] += "」"
		texts = append(texts, innerParts...)
	}

	texts = appendFragmentTexts(texts, after, maxChars)

	fragments := make([]Sentence, 0, len(texts))
	for _, text := range texts {
		fragments = append(fragments, Sentence{
			Text:  text,
			Start: sentence.Start,
			End:   sentence.End,
		})
	}
	return fragments, true
}

// appendFragmentTexts splits surrounding text to the fragment cap and
// appends the pieces, skipping empty text.
func appendFragmentTexts(dst []string, text string, maxChars int) []string {
	if strings.TrimSpace(text) == "" {
		return dst
	}
	return append(dst, splitTextRuns(text, maxChars)...)
}

// splitTextRuns applies the long-sentence boundary search to bare text.
func splitTextRuns(text string, maxChars int) []string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return []string{text}
	}
	var parts []string
	remaining := runes
	for len(remaining) > maxChars {
		idx := splitIndex(remaining, maxChars)
		parts = append(parts, string(remaining[:idx]))
		remaining = remaining[idx:]
	}
	parts = append(parts, string(remaining))
	return parts
}
