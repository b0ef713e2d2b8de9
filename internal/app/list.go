package app

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mgregory22/priorities/console"
	"github.com/mgregory22/priorities/task"
)

// formatList renders tasks one per line as "N. name", numbers right-aligned
// and names truncated to fit width.
func formatList(tasks []task.Task, width int, s console.Style) string {
	if len(tasks) == 0 {
		return s.Empty.Render("No tasks.")
	}

	numW := len(strconv.Itoa(len(tasks)))
	room := max(width-numW-2, 1)

	lines := make([]string, len(tasks))
	for i, t := range tasks {
		num := runewidth.FillLeft(strconv.Itoa(i+1), numW) + "."
		name := runewidth.Truncate(t.Name, room, "…")
		lines[i] = s.Priority.Render(num) + " " + s.Task.Render(name)
	}
	return strings.Join(lines, "\n")
}
