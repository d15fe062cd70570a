package editor

// MessageKind identifies an abstract edit intent.
type MessageKind uint8

const (
	MsgNoop MessageKind = iota

	MsgInsertChar
	MsgInsertNewline
	MsgInsertTab
	MsgDeleteBefore
	MsgDeleteAfter
	MsgCutToEndOfLine
	MsgUndo
	MsgRedo

	MsgMoveForward
	MsgMoveBackward
	MsgLineStart
	MsgLineEnd
	MsgNextLine
	MsgPreviousLine

	MsgSave
	MsgToggleHelp
	MsgToggleSearch
	MsgQuit
)

// Message is one abstract edit intent. Rune is meaningful only for
// MsgInsertChar.
type Message struct {
	Kind MessageKind
	Rune rune
}

// InsertChar builds the message for typing r.
func InsertChar(r rune) Message {
	return Message{Kind: MsgInsertChar, Rune: r}
}
