// Package editor provides the editing controller: it owns the gap buffer,
// the undo history, and the search index, routes abstract messages to them
// according to the current mode, and exposes the read-only state a renderer
// needs (cursor position, display segments, mode queries, viewport top).
//
// The controller is single-threaded: one message is dispatched to completion
// before the next, and renderers read state only between dispatches.
package editor
