package app

import (
	"context"
	"errors"
	"strings"

	"github.com/mgregory22/priorities/console"
	"github.com/mgregory22/priorities/task"
)

func (a *App) buildMenu(ctx context.Context) console.Menu {
	return console.Menu{
		Title: "Priorities",
		Items: []console.MenuItem{
			{Binding: a.keys.Add, Action: func() error { return a.add(ctx) }},
			{Binding: a.keys.Delete, Action: func() error { return a.remove(ctx) }},
			{Binding: a.keys.Rename, Action: func() error { return a.rename(ctx) }},
			{Binding: a.keys.Move, Action: func() error { return a.move(ctx) }},
			{Binding: a.keys.List, Action: func() error { a.printList(); return nil }},
			{Binding: a.keys.Undo, Action: func() error { return a.undo(ctx) }},
			{Binding: a.keys.Redo, Action: func() error { return a.redo(ctx) }},
			{Binding: a.keys.Quit, Action: func() error { a.quit = true; return nil }},
		},
	}
}

// cancelled reports whether err is an esc from a prompt, setting msg as the
// status if so.
func (a *App) cancelled(err error, msg string) bool {
	if errors.Is(err, console.ErrCancelled) {
		a.setStatus(msg)
		return true
	}
	return false
}

func (a *App) add(ctx context.Context) error {
	name, err := a.con.AskString(a.prompts.Name, "")
	if a.cancelled(err, "Add cancelled") {
		return nil
	}
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		a.setStatus("Add cancelled")
		return nil
	}

	cmd := task.AddCommand(name)
	if n := a.list.Len(); n > 0 {
		p, ok, err := a.con.AskInt(a.prompts.Priority, 1, n+1)
		if a.cancelled(err, "Add cancelled") {
			return nil
		}
		if err != nil {
			return err
		}
		if ok {
			cmd = task.InsertCommand(p-1, name)
		}
	}
	return a.apply(ctx, cmd)
}

// askPriority asks for an existing priority. ok is false when the list is
// empty or the answer was blank or cancelled; the status says why.
func (a *App) askPriority(msg, action string) (int, bool, error) {
	n := a.list.Len()
	if n == 0 {
		a.setStatus("No tasks to " + action)
		return 0, false, nil
	}
	p, ok, err := a.con.AskInt(msg, 1, n)
	if a.cancelled(err, capitalize(action)+" cancelled") {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if !ok {
		a.setStatus(capitalize(action) + " cancelled")
		return 0, false, nil
	}
	return p - 1, true, nil
}

func (a *App) remove(ctx context.Context) error {
	i, ok, err := a.askPriority("Delete priority: ", "delete")
	if err != nil || !ok {
		return err
	}
	return a.apply(ctx, task.RemoveCommand(i))
}

func (a *App) rename(ctx context.Context) error {
	i, ok, err := a.askPriority("Rename priority: ", "rename")
	if err != nil || !ok {
		return err
	}
	t, err := a.list.At(i)
	if err != nil {
		return err
	}

	name, err := a.con.AskString(a.prompts.Name, t.Name)
	if a.cancelled(err, "Rename cancelled") {
		return nil
	}
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(name) == t.Name {
		a.setStatus("Rename cancelled")
		return nil
	}
	return a.apply(ctx, task.RenameCommand(i, name))
}

func (a *App) move(ctx context.Context) error {
	from, ok, err := a.askPriority("Move priority: ", "move")
	if err != nil || !ok {
		return err
	}
	to, ok, err := a.askPriority("To priority: ", "move")
	if err != nil || !ok {
		return err
	}
	if from == to {
		a.setStatus("Move cancelled")
		return nil
	}
	return a.apply(ctx, task.MoveCommand(from, to))
}

func (a *App) undo(ctx context.Context) error {
	cmd, ok, err := a.hist.Undo(a.list)
	if !ok {
		a.setStatus("Nothing to undo")
		return nil
	}
	if err != nil {
		return err
	}
	a.log.Printf("undo: %s", cmd.Describe())
	a.changed(ctx, "Undid "+cmd.Describe())
	return nil
}

func (a *App) redo(ctx context.Context) error {
	cmd, ok, err := a.hist.Redo(a.list)
	if !ok {
		a.setStatus("Nothing to redo")
		return nil
	}
	if err != nil {
		return err
	}
	a.log.Printf("redo: %s", cmd.Describe())
	a.changed(ctx, "Redid "+cmd.Describe())
	return nil
}
