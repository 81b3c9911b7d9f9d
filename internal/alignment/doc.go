// Package alignment loads character-level timing data produced by an
// upstream forced aligner and prepares it for segmentation. It understands
// the JSON shapes emitted by different aligner versions, normalizes leading
// silence out of the timeline, and removes layout newlines inside quotations
// so the segmenter sees continuous text.
package alignment
