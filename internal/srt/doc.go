// Package srt renders cue lists as SubRip files and as the timing JSON
// artifact consumed by downstream composition, and validates rendered SRT
// content for structural problems.
package srt
