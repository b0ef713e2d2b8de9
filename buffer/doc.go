// Package buffer implements the text model of one line of input: a sequence
// of runes and a cursor offset into it.
//
// The cursor always satisfies 0 <= Cursor() <= Len(). Operations never fail;
// edits and moves at a boundary are no-ops.
package buffer
