package editor

import (
	"fmt"

	"github.com/nvanthao/sparrow/buffer"
	"github.com/nvanthao/sparrow/internal/atomicfile"
)

// Save writes the document to its path. The buffer's two halves go out
// directly, without assembling an intermediate copy. On success the history
// gains a checkpoint and the dirty flag clears; on failure every flag and the
// history stay as they were.
func (e *Editor) Save() error {
	if err := atomicfile.WriteFile(e.path, e.buf.Before(), e.buf.After()); err != nil {
		return fmt.Errorf("save %s: %w", e.path, err)
	}

	e.hist.Push(buffer.Command{Kind: buffer.CmdCheckpoint, Off: e.buf.Offset()})
	e.dirty = false
	e.saved = true
	return nil
}
