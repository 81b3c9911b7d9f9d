// Package textutil provides Japanese text helpers shared by the segmentation
// engine: display-width normalization and glyph counting.
//
// Line budgets count display cells, so halfwidth katakana coming out of the
// alignment producer is folded to its fullwidth form before any counting or
// boundary search happens. Counting rules live here so the engine and the
// serializer agree on what "one character" means.
package textutil
