package tui

// Mode is the interaction mode of the model. Exactly one mode is active
// at a time; the input modes share the text buffer.
type Mode int

const (
	ModeView Mode = iota
	ModeAdd
	ModeEdit
	ModeSetCommand
)

func (m Mode) String() string {
	switch m {
	case ModeView:
		return "view"
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	case ModeSetCommand:
		return "set-command"
	default:
		return "unknown"
	}
}

// IsInput reports whether the mode reads the text buffer.
func (m Mode) IsInput() bool {
	return m == ModeAdd || m == ModeEdit || m == ModeSetCommand
}

// InputTitle is the prompt title shown above the text input.
func (m Mode) InputTitle() string {
	switch m {
	case ModeAdd:
		return "New task"
	case ModeEdit:
		return "Edit task"
	case ModeSetCommand:
		return "Test command"
	default:
		return ""
	}
}
