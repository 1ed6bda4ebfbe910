package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdo-sh/tdo/internal/picker"
	"github.com/tdo-sh/tdo/task"
)

const testFile = "- [ ] buy milk\n- [x] pay bills\nrandom note"

func newTestSession(t *testing.T, contents string, responses ...picker.Response) (*session, *bytes.Buffer) {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".todo.md")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write todo file: %v", err)
	}

	out := &bytes.Buffer{}
	return &session{
		tasks:  task.Load(contents),
		path:   path,
		picker: picker.NewScripted(responses...),
		out:    out,
	}, out
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read todo file: %v", err)
	}
	return string(data)
}

func TestUserAdd(t *testing.T) {
	s, _ := newTestSession(t, testFile,
		picker.Choose("laundry"),
		picker.Choose("dishes"),
		picker.Abort(),
	)

	if err := userAdd(s); err != nil {
		t.Fatalf("userAdd: %v", err)
	}

	want := "- [ ] buy milk\n- [x] pay bills\n- random note\n- [ ] laundry\n- [ ] dishes"
	if got := readFile(t, s.path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}

	// New ids are length+2 at the time of each add.
	tasks := s.tasks.Tasks()
	if tasks[3].ID != 5 || tasks[4].ID != 6 {
		t.Errorf("new ids = %d, %d; want 5, 6", tasks[3].ID, tasks[4].ID)
	}
}

func TestUserAdd_AbortLeavesFileUntouched(t *testing.T) {
	s, _ := newTestSession(t, testFile, picker.Abort())

	if err := userAdd(s); err != nil {
		t.Fatalf("userAdd: %v", err)
	}

	if got := readFile(t, s.path); got != testFile {
		t.Errorf("file rewritten on abort: %q", got)
	}
}

func TestUserAdd_EmptyEntryStops(t *testing.T) {
	s, _ := newTestSession(t, testFile, picker.Choose(""))

	if err := userAdd(s); err != nil {
		t.Fatalf("userAdd: %v", err)
	}

	if got := readFile(t, s.path); got != testFile {
		t.Errorf("file rewritten on empty entry: %q", got)
	}
	if s.tasks.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.tasks.Len())
	}
}

func TestUserRemove_Confirmed(t *testing.T) {
	s, _ := newTestSession(t, testFile,
		picker.Choose("    2 | ✓ pay bills"),
		picker.Choose("yes"),
		picker.Abort(),
	)

	if err := userRemove(s); err != nil {
		t.Fatalf("userRemove: %v", err)
	}

	want := "- [ ] buy milk\n- random note"
	if got := readFile(t, s.path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestUserRemove_Declined(t *testing.T) {
	s, _ := newTestSession(t, testFile,
		picker.Choose("    2 | ✓ pay bills"),
		picker.Choose("no"),
		picker.Abort(),
	)

	if err := userRemove(s); err != nil {
		t.Fatalf("userRemove: %v", err)
	}

	if s.tasks.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.tasks.Len())
	}
}

func TestUserRemove_AlwaysRewrites(t *testing.T) {
	s, _ := newTestSession(t, testFile, picker.Abort())

	if err := userRemove(s); err != nil {
		t.Fatalf("userRemove: %v", err)
	}

	// Even a no-op remove rewrites, normalizing bare notes to bullets.
	want := "- [ ] buy milk\n- [x] pay bills\n- random note"
	if got := readFile(t, s.path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestUserRemove_MalformedSelectionEndsLoop(t *testing.T) {
	s, _ := newTestSession(t, testFile, picker.Choose("not an id | garbage"))

	if err := userRemove(s); err != nil {
		t.Fatalf("userRemove: %v", err)
	}

	if s.tasks.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.tasks.Len())
	}
}

func TestUserSet(t *testing.T) {
	s, _ := newTestSession(t, testFile,
		picker.Choose("    1 | ✕ buy milk"),
		picker.Choose("✓ done"),
		picker.Abort(),
	)

	if err := userSet(s); err != nil {
		t.Fatalf("userSet: %v", err)
	}

	want := "- [x] buy milk\n- [x] pay bills\n- random note"
	if got := readFile(t, s.path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestUserSet_StatusAbortKeepsTask(t *testing.T) {
	s, _ := newTestSession(t, testFile,
		picker.Choose("    1 | ✕ buy milk"),
		picker.Abort(), // status menu
		picker.Abort(), // task picker
	)

	if err := userSet(s); err != nil {
		t.Fatalf("userSet: %v", err)
	}

	if s.tasks.Get(1).Status != task.StatusTodo {
		t.Error("status changed despite aborted status menu")
	}
}

func TestUserModify(t *testing.T) {
	s, _ := newTestSession(t, testFile,
		picker.Choose("    1 | ✕ buy milk"),
		picker.Choose("buy oat milk"),
		picker.Abort(),
	)

	if err := userModify(s); err != nil {
		t.Fatalf("userModify: %v", err)
	}

	want := "- [ ] buy oat milk\n- [x] pay bills\n- random note"
	if got := readFile(t, s.path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestUserModify_EmptyTextKeepsOld(t *testing.T) {
	s, _ := newTestSession(t, testFile,
		picker.Choose("    1 | ✕ buy milk"),
		picker.Choose(""),
		picker.Abort(),
	)

	if err := userModify(s); err != nil {
		t.Fatalf("userModify: %v", err)
	}

	if got := s.tasks.Get(1).Text; got != "buy milk" {
		t.Errorf("text = %q, want unchanged", got)
	}
}

func TestUserSort(t *testing.T) {
	s, _ := newTestSession(t, "note\n- [x] done\n- [ ] todo")

	if err := userSort(s); err != nil {
		t.Fatalf("userSort: %v", err)
	}

	want := "- [ ] todo\n- [x] done\n- note"
	if got := readFile(t, s.path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestUserClean(t *testing.T) {
	s, _ := newTestSession(t, "- [x] one\nnote\n- [ ] two\n- [x] three")

	if err := userClean(s); err != nil {
		t.Fatalf("userClean: %v", err)
	}

	want := "- [ ] two\n- note"
	if got := readFile(t, s.path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestUserView(t *testing.T) {
	s, out := newTestSession(t, "- [x] done\n- [ ] todo")
	t.Setenv("NO_COLOR", "1")

	if err := userView(s); err != nil {
		t.Fatalf("userView: %v", err)
	}

	want := "\n    2 | ✕ todo\n    1 | ✓ done\n\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	// view sorts in memory but never writes.
	if got := readFile(t, s.path); got != "- [x] done\n- [ ] todo" {
		t.Errorf("view rewrote file: %q", got)
	}
}

func TestPickTask_EmptyList(t *testing.T) {
	s, _ := newTestSession(t, "")

	_, picked, err := s.pickTask("remove > ")
	if err != nil {
		t.Fatalf("pickTask: %v", err)
	}
	if picked {
		t.Error("empty list should not pick")
	}
}
