package core

// Action is a semantic input, decoupled from the physical key.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // move cursor up
	ActionDown            // move cursor down
	ActionLeft            // move cursor left
	ActionRight           // move cursor right
	ActionPlace           // place a mark at the cursor
	ActionUndo            // take back the last move
	ActionRestart         // start a new round, keep the tally
	ActionResetAll        // new round and zeroed tally
	ActionBack            // leave the game
	ActionQuit            // exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPlace:
		return "Place"
	case ActionUndo:
		return "Undo"
	case ActionRestart:
		return "Restart"
	case ActionResetAll:
		return "ResetAll"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input received during one tick.
type InputFrame struct {
	Actions map[Action]bool
	// Cell is a direct cell selection (0-8) from the number keys, or -1.
	Cell int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Cell:    -1,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SelectCell records a direct cell selection.
func (f *InputFrame) SelectCell(idx int) {
	f.Cell = idx
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// HasCell reports whether a cell was selected directly this frame.
func (f InputFrame) HasCell() bool {
	return f.Cell >= 0
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.Cell < 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Cell = -1
}
