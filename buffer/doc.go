// Package buffer implements the document storage for sparrow: a byte-level
// gap buffer with UTF-8-safe cursor movement, plus the undo/redo history that
// records and coalesces inverse edits.
//
// All external addressing uses logical offsets (positions in the visible
// document, excluding gap bytes). The gap itself is never exposed.
package buffer
