package segment

import (
	"log/slog"

	"jimaku/internal/alignment"
	"jimaku/internal/config"
	"jimaku/internal/logging"
	"jimaku/internal/textutil"
)

// Options bundles the knobs the segmentation pipeline needs.
type Options struct {
	MaxCharsPerLine         int
	RecommendedCharsPerLine int
	MaxCharsPerFragment     int
	QuotationSplitThreshold int
	MinDisplayDuration      float64
	SentenceEndExtension    bool
	NextStartMargin         float64
	LastCueExtension        float64
	FPS                     float64
}

// OptionsFromConfig maps the loaded configuration onto pipeline options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MaxCharsPerLine:         cfg.Subtitles.MaxCharsPerLine,
		RecommendedCharsPerLine: cfg.Subtitles.RecommendedCharsPerLine,
		MaxCharsPerFragment:     cfg.Subtitles.MaxCharsPerFragment,
		QuotationSplitThreshold: cfg.Subtitles.QuotationSplitThreshold,
		MinDisplayDuration:      cfg.Timing.MinDisplayDuration,
		SentenceEndExtension:    cfg.Timing.SentenceEndExtension,
		NextStartMargin:         cfg.Timing.NextStartMargin,
		LastCueExtension:        cfg.Timing.LastCueExtension,
		FPS:                     cfg.Timing.FPS,
	}
}

// BuildCues runs the full segmentation pipeline over aligned sections and
// returns the final cue list. Stages run in a fixed order: normalize timing,
// split sentences, fragment long sentences and quotations, wrap lines,
// repair three-line spillover, adjust end times, then strip display
// punctuation.
func BuildCues(sections []alignment.SectionTiming, opts Options, logger *slog.Logger) []SubtitleEntry {
	if logger == nil {
		logger = logging.NewNop()
	}
	log := logging.NewComponentLogger(logger, "segmenter")

	var entries []SubtitleEntry
	for _, section := range sections {
		section = foldSectionWidth(section)
		section = alignment.Normalize(section)
		section = alignment.StripQuotedNewlines(section, log)

		for _, sentence := range SplitSentences(section, log) {
			fragments := fragmentSentence(sentence, opts, log)
			for _, frag := range fragments {
				lines := WrapLines(frag.Text, opts.RecommendedCharsPerLine, opts.MaxCharsPerLine)
				if lines.Line1 == "" && lines.Line2 == "" && lines.Line3 == "" {
					continue
				}
				entries = append(entries, SubtitleEntry{
					Start: section.Offset + frag.Start,
					End:   section.Offset + frag.End,
					Line1: lines.Line1,
					Line2: lines.Line2,
					Line3: lines.Line3,
				})
			}
		}
	}
	entries = Renumber(entries)

	entries = RepairThreeLines(entries, log)
	if opts.SentenceEndExtension {
		entries = AdjustTimings(entries, AdjustOptions{
			NextStartMargin:  opts.NextStartMargin,
			LastCueExtension: opts.LastCueExtension,
			FPS:              opts.FPS,
		}, log)
	}
	entries = OptimizeGaps(entries, log)
	entries = StripPunctuation(entries)

	for _, entry := range entries {
		if entry.Duration() < opts.MinDisplayDuration {
			log.Debug("cue shorter than minimum display duration",
				logging.Int(logging.FieldCue, entry.Index),
				logging.Float64(logging.FieldDuration, entry.Duration()))
		}
	}

	log.Info("segmentation complete",
		logging.Int(logging.FieldCueCount, len(entries)))
	return entries
}

// fragmentSentence applies quotation-aware fragmentation, falling back to
// plain long-sentence splitting when the sentence has no usable quotation.
func fragmentSentence(sentence Sentence, opts Options, logger *slog.Logger) []Sentence {
	if fragments, ok := AnalyzeQuotation(sentence, opts.QuotationSplitThreshold, opts.MaxCharsPerFragment, logger); ok {
		return fragments
	}
	return SplitLongSentence(sentence, opts.MaxCharsPerFragment)
}

// foldSectionWidth normalizes halfwidth katakana so downstream character
// classes and length caps see one glyph per spoken character.
func foldSectionWidth(section alignment.SectionTiming) alignment.SectionTiming {
	section.DisplayText = textutil.NormalizeKanaWidth(section.DisplayText)
	section.TTSText = textutil.NormalizeKanaWidth(section.TTSText)
	chars := make([]alignment.CharTiming, len(section.Chars))
	copy(chars, section.Chars)
	for i := range chars {
		chars[i].Char = textutil.NormalizeKanaWidth(chars[i].Char)
	}
	section.Chars = chars
	return section
}
