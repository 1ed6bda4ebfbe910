package task

import (
	"sort"
	"strconv"
	"strings"
)

// List is the ordered collection of tasks loaded from one file. Order
// is file order until Sort is called. A list is owned by a single
// command invocation: constructed fresh from the file on process start
// and discarded after the file is rewritten.
type List struct {
	tasks []Task
}

// Load parses file text into a list. Line 1 of the file becomes id 1,
// and so on.
func Load(text string) *List {
	lines := splitLines(text)
	tasks := make([]Task, 0, len(lines))
	for i, line := range lines {
		tasks = append(tasks, Parse(i+1, line))
	}
	return &List{tasks: tasks}
}

// NewList returns a list holding the given tasks.
func NewList(tasks ...Task) *List {
	return &List{tasks: tasks}
}

// splitLines mirrors the line iteration used at load time: a trailing
// newline does not produce an empty final line, and \r\n endings are
// accepted.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns the tasks in their current order.
func (l *List) Tasks() []Task {
	return l.tasks
}

// Sort reorders the list in place: todo items first, then done, then
// free-form notes, by ascending id within equal status. The sort is
// stable and sorting an already-sorted list leaves it unchanged.
func (l *List) Sort() {
	sort.SliceStable(l.tasks, func(i, j int) bool {
		return l.tasks[i].Compare(l.tasks[j]) < 0
	})
}

// Add appends a task to the end of the list. No uniqueness check is
// made on the id; callers derive fresh ids from NextID.
func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// NextID returns the id assigned to a newly added task: the current
// length plus two. Ids restart from line positions on the next load,
// so this only needs to avoid colliding until the file is rewritten.
func (l *List) NextID() int {
	return len(l.tasks) + 2
}

// IndexOf returns the position of the first task with the given id, or
// -1 if absent.
func (l *List) IndexOf(id int) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Get returns a mutable handle to the first task with the given id, or
// nil if absent.
func (l *List) Get(id int) *Task {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return &l.tasks[i]
		}
	}
	return nil
}

// Delete removes and returns the first task with the given id. When no
// task matches, the list is unchanged and ok is false.
func (l *List) Delete(id int) (Task, bool) {
	i := l.IndexOf(id)
	if i < 0 {
		return Task{}, false
	}
	t := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return t, true
}

// DeleteDone removes all completed tasks and returns how many were
// removed.
func (l *List) DeleteDone() int {
	kept := l.tasks[:0]
	removed := 0
	for _, t := range l.tasks {
		if t.Status == StatusDone {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	l.tasks = kept
	return removed
}

// File serializes the list back to file text: one line per task joined
// by newlines, with no trailing newline beyond the join.
func (l *List) File() string {
	lines := make([]string, len(l.tasks))
	for i, t := range l.tasks {
		lines[i] = t.Line()
	}
	return strings.Join(lines, "\n")
}

// Render produces the display form of the whole list, one rendered
// line per task, each terminated by a newline. This is also the
// corpus fed to the task picker.
func (l *List) Render(opts RenderOptions) string {
	var b strings.Builder
	for _, t := range l.tasks {
		b.WriteString(t.Render(opts))
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseID extracts a task id from a rendered or selected line: the
// first whitespace-delimited token parsed as an unsigned integer.
func ParseID(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	id, err := strconv.ParseUint(fields[0], 10, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}
	return int(id), true
}
