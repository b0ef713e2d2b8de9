// Package app runs the interactive task-priority menu.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mgregory22/priorities/console"
	"github.com/mgregory22/priorities/internal/config"
	"github.com/mgregory22/priorities/internal/logging"
	"github.com/mgregory22/priorities/task"
)

// Store persists the task list between runs.
type Store interface {
	Load(ctx context.Context) ([]task.Task, error)
	Save(ctx context.Context, tasks []task.Task) error
}

type Options struct {
	// Store is optional; without it the list lives in memory only.
	Store  Store
	Logger *logging.Logger

	HistoryLimit int
	Prompts      config.Prompts
	Keys         KeyMap
}

// App owns the task list and its history for one session.
type App struct {
	con     *console.Console
	list    *task.List
	hist    *task.History
	store   Store
	log     *logging.Logger
	prompts config.Prompts
	keys    KeyMap
	menu    console.Menu

	status    string
	statusErr bool
	quit      bool
}

func New(con *console.Console, opts Options) *App {
	if opts.Prompts == (config.Prompts{}) {
		opts.Prompts = config.Default().Prompts
	}
	if len(opts.Keys.Quit.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}

	a := &App{
		con:     con,
		list:    task.NewList(),
		hist:    task.NewHistory(opts.HistoryLimit),
		store:   opts.Store,
		log:     opts.Logger,
		prompts: opts.Prompts,
		keys:    opts.Keys,
	}
	return a
}

// List returns the current tasks.
func (a *App) List() []task.Task { return a.list.All() }

// Load replaces the list with the stored one.
func (a *App) Load(ctx context.Context) error {
	if a.store == nil {
		return nil
	}
	tasks, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("app: load tasks: %w", err)
	}
	a.list = task.NewList(tasks...)
	a.log.Printf("loaded %d tasks", len(tasks))
	return nil
}

// Run shows the menu and dispatches keys until quit, end of input, or ctx
// is done. A done ctx also ends a prompt or menu that is waiting for a key,
// and Run returns the context's error.
func (a *App) Run(ctx context.Context) error {
	a.con.BindContext(ctx)
	a.menu = a.buildMenu(ctx)
	a.printList()

	for !a.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.flushStatus()
		a.con.Println(a.menu.Render(a.con.Style()))

		msg, err := a.con.ReadKey()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("app: read key: %w", err)
		}

		matched, err := a.menu.Dispatch(msg)
		switch {
		case errors.Is(err, console.ErrInterrupted):
			a.log.Printf("interrupted")
			return nil
		case errors.Is(err, io.EOF):
			return nil
		case err != nil && ctx.Err() != nil:
			a.log.Printf("stopped: %v", err)
			return ctx.Err()
		case err != nil:
			a.fail(err)
		case !matched:
			a.setStatus(fmt.Sprintf("Unknown key %q", msg.String()))
		}
	}
	a.log.Printf("quit with %d tasks", a.list.Len())
	return nil
}

func (a *App) setStatus(s string) {
	a.status, a.statusErr = s, false
}

func (a *App) fail(err error) {
	a.log.Printf("error: %v", err)
	a.status, a.statusErr = "Error: "+err.Error(), true
}

func (a *App) flushStatus() {
	if a.status == "" {
		return
	}
	st := a.con.Style().Status
	if a.statusErr {
		st = a.con.Style().Error
	}
	a.con.Println(st.Render(a.status))
	a.status, a.statusErr = "", false
}

func (a *App) printList() {
	a.con.Println(formatList(a.list.All(), a.con.Width(), a.con.Style()))
}

// apply runs cmd through the history, then saves and shows the list.
func (a *App) apply(ctx context.Context, cmd task.Command) error {
	done, err := a.hist.Execute(a.list, cmd)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Kind, err)
	}
	a.log.Printf("do: %s", done.Describe())
	a.changed(ctx, capitalize(done.Describe()))
	return nil
}

// changed saves the list and reports msg. A failed save is logged and
// shown, never returned.
func (a *App) changed(ctx context.Context, msg string) {
	a.printList()
	a.setStatus(msg)
	if a.store == nil {
		return
	}
	if err := a.store.Save(ctx, a.list.All()); err != nil {
		a.fail(fmt.Errorf("save: %w", err))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
