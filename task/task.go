// Package task implements the markdown task list format: one task per
// line, with a checkbox marker encoding a tri-state status.
//
// The file format is line-oriented markdown checklist syntax:
//
//	- [ ] an unfinished task
//	- [x] a completed task
//	- anything else
//
// Lines are 1-indexed to assign transient task ids on each load; ids
// identify a task only until the file is rewritten.
package task

import (
	"fmt"
	"strings"

	"github.com/tdo-sh/tdo/internal/ui"
)

// Status is the state of a task.
type Status int

const (
	// StatusTodo is an unfinished checklist item.
	StatusTodo Status = iota

	// StatusDone is a completed checklist item.
	StatusDone

	// StatusOther is any line without a checkbox marker.
	StatusOther
)

// statusRank fixes the sort order independently of declaration order:
// todo items first, then done, then free-form notes.
var statusRank = map[Status]int{
	StatusTodo:  0,
	StatusDone:  1,
	StatusOther: 2,
}

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusDone, StatusOther}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank returns the status sort rank.
func (s Status) Rank() int {
	rank, ok := statusRank[s]
	if !ok {
		return len(statusRank)
	}
	return rank
}

// Compare orders statuses Todo < Done < Other.
func (s Status) Compare(other Status) int {
	return s.Rank() - other.Rank()
}

func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "todo"
	case StatusDone:
		return "done"
	case StatusOther:
		return "other"
	default:
		return "unknown"
	}
}

// ParseStatus maps a status name to its value.
func ParseStatus(name string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "todo":
		return StatusTodo, true
	case "done":
		return StatusDone, true
	case "other":
		return StatusOther, true
	default:
		return StatusOther, false
	}
}

// Task is one line of the task file.
type Task struct {
	// ID is the 1-based line position assigned at load time. Ids are
	// recomputed from line order on every load, so they identify a
	// task only within one command invocation.
	ID int

	// Text is the task body with checkbox and bullet markup stripped.
	Text string

	// Status is the task's state.
	Status Status
}

// Parse builds a task from one line of the file. A single leading `-`
// is stripped, then a single `[ ]` or `[x]` marker decides the status;
// lines without a marker become Other with their trimmed text kept
// as-is.
func Parse(id int, line string) Task {
	text := line
	if strings.HasPrefix(text, "-") {
		text = strings.Replace(text, "-", "", 1)
	}
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "[ ]") {
		return Task{
			ID:     id,
			Text:   strings.TrimSpace(strings.Replace(text, "[ ]", "", 1)),
			Status: StatusTodo,
		}
	}

	if strings.HasPrefix(text, "[x]") {
		return Task{
			ID:     id,
			Text:   strings.TrimSpace(strings.Replace(text, "[x]", "", 1)),
			Status: StatusDone,
		}
	}

	return Task{ID: id, Text: text, Status: StatusOther}
}

// Line serializes the task back to its file form. Other tasks always
// gain a leading `- `, so a round trip is byte-identical only for
// lines that already carried a bullet.
func (t Task) Line() string {
	switch t.Status {
	case StatusTodo:
		return "- [ ] " + t.Text
	case StatusDone:
		return "- [x] " + t.Text
	default:
		return "- " + t.Text
	}
}

// Equal reports whether two tasks have the same status, id, and text.
func (t Task) Equal(other Task) bool {
	return t.Status == other.Status && t.ID == other.ID && t.Text == other.Text
}

// Compare orders tasks by status rank, then by id within equal status.
func (t Task) Compare(other Task) int {
	if c := t.Status.Compare(other.Status); c != 0 {
		return c
	}
	return t.ID - other.ID
}

// RenderOptions configure display output.
type RenderOptions struct {
	// Color enables ANSI-styled status glyphs.
	Color bool
}

// Render produces the display line: a right-aligned 5-character id
// column, a pipe, a status glyph for todo/done, then the text. The id
// must stay the first whitespace-delimited token so ParseID can map a
// picker selection back to the task.
func (t Task) Render(opts RenderOptions) string {
	switch t.Status {
	case StatusTodo:
		return fmt.Sprintf("%5d | %s %s", t.ID, ui.TodoGlyph(opts.Color), t.Text)
	case StatusDone:
		return fmt.Sprintf("%5d | %s %s", t.ID, ui.DoneGlyph(opts.Color), t.Text)
	default:
		return fmt.Sprintf("%5d | %s", t.ID, t.Text)
	}
}
