package task

import "fmt"

type Kind int

const (
	Add Kind = iota
	Insert
	Remove
	Rename
	Move
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	case Rename:
		return "rename"
	case Move:
		return "move"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Command is one undoable change to a List.
//
// Index is the task the command acts on; To is the destination of a Move.
// Name is the new name for Add, Insert and Rename. Do records what Undo needs.
type Command struct {
	Kind  Kind
	Index int
	To    int
	Name  string

	prev Task
	at   int
}

func AddCommand(name string) Command { return Command{Kind: Add, Name: name} }

func InsertCommand(i int, name string) Command { return Command{Kind: Insert, Index: i, Name: name} }

func RemoveCommand(i int) Command { return Command{Kind: Remove, Index: i} }

func RenameCommand(i int, name string) Command { return Command{Kind: Rename, Index: i, Name: name} }

func MoveCommand(from, to int) Command { return Command{Kind: Move, Index: from, To: to} }

// Do applies the command to l.
func (c *Command) Do(l *List) error {
	switch c.Kind {
	case Add:
		c.at = l.Len()
		return l.Add(c.Name)
	case Insert:
		c.at = c.Index
		return l.Insert(c.Index, c.Name)
	case Remove:
		t, err := l.Remove(c.Index)
		if err != nil {
			return err
		}
		c.prev = t
		return nil
	case Rename:
		old, err := l.Rename(c.Index, c.Name)
		if err != nil {
			return err
		}
		c.prev = Task{Name: old}
		return nil
	case Move:
		return l.Move(c.Index, c.To)
	default:
		return fmt.Errorf("task: unknown command %v", c.Kind)
	}
}

// Undo reverses a successful Do.
func (c *Command) Undo(l *List) error {
	switch c.Kind {
	case Add, Insert:
		_, err := l.Remove(c.at)
		return err
	case Remove:
		return l.Insert(c.Index, c.prev.Name)
	case Rename:
		_, err := l.Rename(c.Index, c.prev.Name)
		return err
	case Move:
		return l.Move(c.To, c.Index)
	default:
		return fmt.Errorf("task: unknown command %v", c.Kind)
	}
}

// Describe names the command for status messages. Priorities are 1-based.
func (c *Command) Describe() string {
	switch c.Kind {
	case Add:
		return fmt.Sprintf("add %q", c.Name)
	case Insert:
		return fmt.Sprintf("add %q at priority %d", c.Name, c.Index+1)
	case Remove:
		if c.prev.Name != "" {
			return fmt.Sprintf("delete %q", c.prev.Name)
		}
		return fmt.Sprintf("delete priority %d", c.Index+1)
	case Rename:
		return fmt.Sprintf("rename priority %d to %q", c.Index+1, c.Name)
	case Move:
		return fmt.Sprintf("move priority %d to %d", c.Index+1, c.To+1)
	default:
		return c.Kind.String()
	}
}
