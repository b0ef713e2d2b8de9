package task

// DefaultHistoryLimit is used when a History is created with a limit <= 0.
const DefaultHistoryLimit = 100

// History keeps executed commands for undo and redo.
type History struct {
	limit int
	undo  []Command
	redo  []Command
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }

func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Execute runs cmd on l and records it. A command that fails is not
// recorded. Recording clears the redo stack.
func (h *History) Execute(l *List, cmd Command) (Command, error) {
	if err := cmd.Do(l); err != nil {
		return cmd, err
	}
	h.push(cmd)
	h.redo = nil
	return cmd, nil
}

// Undo reverses the last command. ok is false when there is nothing to undo.
func (h *History) Undo(l *List) (Command, bool, error) {
	if len(h.undo) == 0 {
		return Command{}, false, nil
	}

	i := len(h.undo) - 1
	cmd := h.undo[i]
	if err := cmd.Undo(l); err != nil {
		return cmd, true, err
	}
	h.undo = h.undo[:i]
	h.redo = append(h.redo, cmd)
	return cmd, true, nil
}

// Redo re-runs the last undone command.
func (h *History) Redo(l *List) (Command, bool, error) {
	if len(h.redo) == 0 {
		return Command{}, false, nil
	}

	i := len(h.redo) - 1
	cmd := h.redo[i]
	if err := cmd.Do(l); err != nil {
		return cmd, true, err
	}
	h.redo = h.redo[:i]
	h.push(cmd)
	return cmd, true, nil
}

func (h *History) push(cmd Command) {
	h.undo = append(h.undo, cmd)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
}
