// Package task holds the prioritised task list and the undoable commands
// that change it.
//
// Priorities are list positions: index 0 is priority 1, the most important
// task.
package task
