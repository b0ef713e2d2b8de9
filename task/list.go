package task

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfRange = errors.New("task: index out of range")
	ErrEmptyName  = errors.New("task: empty name")
)

type Task struct {
	Name string
}

// List is an ordered list of tasks, most important first.
type List struct {
	tasks []Task
}

// NewList returns a list holding tasks in order.
func NewList(tasks ...Task) *List {
	l := &List{tasks: make([]Task, len(tasks))}
	copy(l.tasks, tasks)
	return l
}

func (l *List) Len() int { return len(l.tasks) }

// At returns the task at i.
func (l *List) At(i int) (Task, error) {
	if err := l.check(i, len(l.tasks)); err != nil {
		return Task{}, err
	}
	return l.tasks[i], nil
}

// All returns a copy of the tasks in order.
func (l *List) All() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Add appends a task.
func (l *List) Add(name string) error {
	return l.Insert(len(l.tasks), name)
}

// Insert puts a task at i, shifting later tasks down. i may equal Len.
func (l *List) Insert(i int, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	if err := l.check(i, len(l.tasks)+1); err != nil {
		return err
	}
	l.tasks = append(l.tasks, Task{})
	copy(l.tasks[i+1:], l.tasks[i:])
	l.tasks[i] = Task{Name: name}
	return nil
}

// Remove deletes and returns the task at i.
func (l *List) Remove(i int) (Task, error) {
	if err := l.check(i, len(l.tasks)); err != nil {
		return Task{}, err
	}
	t := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return t, nil
}

// Rename sets the name of the task at i and returns the old one.
func (l *List) Rename(i int, name string) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	if err := l.check(i, len(l.tasks)); err != nil {
		return "", err
	}
	old := l.tasks[i].Name
	l.tasks[i].Name = name
	return old, nil
}

// Move takes the task at from and puts it at to. The tasks in between shift
// by one.
func (l *List) Move(from, to int) error {
	if err := l.check(from, len(l.tasks)); err != nil {
		return err
	}
	if err := l.check(to, len(l.tasks)); err != nil {
		return err
	}
	t := l.tasks[from]
	switch {
	case from < to:
		copy(l.tasks[from:to], l.tasks[from+1:to+1])
	case from > to:
		copy(l.tasks[to+1:from+1], l.tasks[to:from])
	}
	l.tasks[to] = t
	return nil
}

func (l *List) check(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, n)
	}
	return nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}
