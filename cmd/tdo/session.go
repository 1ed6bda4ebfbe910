package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tdo-sh/tdo/internal/config"
	"github.com/tdo-sh/tdo/internal/paths"
	"github.com/tdo-sh/tdo/internal/picker"
	"github.com/tdo-sh/tdo/internal/ui"
	"github.com/tdo-sh/tdo/task"
)

// session holds everything one command invocation operates on: the
// loaded tasks, the file they came from, the selection UI, and where
// output goes. The interactive loop shares a single session across
// iterations without reloading the file.
type session struct {
	tasks         *task.List
	path          string
	picker        picker.Picker
	out           io.Writer
	editorProgram string
}

// newSession resolves the todo file, loads it, and wires the
// interactive picker. File resolution: the --file flag wins, then the
// local .todo.md, then TDO_DEFAULT_FILE, then the config default-file.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()

	path := flagFile
	if path != "" {
		if err := paths.Check(path); err != nil {
			return nil, err
		}
	} else {
		defaultFile := os.Getenv("TDO_DEFAULT_FILE")
		if defaultFile == "" {
			defaultFile = cfg.DefaultFile
		}

		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}

		resolved, usedDefault, err := paths.Resolve(cwd, defaultFile)
		if err != nil {
			return nil, err
		}
		if usedDefault {
			fmt.Fprintf(out, "using default file: %s\n", resolved)
		}
		path = resolved
	}

	editorProgram := os.Getenv("EDITOR")
	if editorProgram == "" {
		editorProgram = cfg.Editor
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read todo file: %w", err)
	}

	return &session{
		tasks:         task.Load(string(data)),
		path:          path,
		picker:        picker.NewFuzzy(),
		out:           out,
		editorProgram: editorProgram,
	}, nil
}

// save rewrites the todo file from the in-memory list.
func (s *session) save() error {
	if err := os.WriteFile(s.path, []byte(s.tasks.File()), 0o644); err != nil {
		return fmt.Errorf("write todo file: %w", err)
	}
	return nil
}

// pickTask shows the rendered list and returns the selected task's id.
// picked is false when the user aborts, the list is empty, or the
// selected line does not start with an id token; all three end the
// caller's loop. A well-formed id with no matching task still counts
// as picked, and the per-task operation is a no-op.
func (s *session) pickTask(prompt string) (id int, picked bool, err error) {
	if s.tasks.Len() == 0 {
		return 0, false, nil
	}

	candidates := make([]string, 0, s.tasks.Len())
	for _, t := range s.tasks.Tasks() {
		candidates = append(candidates, t.Render(task.RenderOptions{}))
	}

	line, ok, err := s.picker.Pick(candidates, picker.Options{Prompt: prompt})
	if err != nil || !ok {
		return 0, false, err
	}

	id, ok = task.ParseID(line)
	if !ok {
		return 0, false, nil
	}
	return id, true, nil
}

// confirmDelete asks for a yes/no confirmation and deletes the task on
// "yes". The task's text is shown as the menu header.
func (s *session) confirmDelete(id int) error {
	t := s.tasks.Get(id)
	if t == nil {
		return nil
	}

	answer, ok, err := s.picker.Pick([]string{"no", "yes"}, picker.Options{
		Prompt: "permanently delete task: ",
		Header: t.Text,
	})
	if err != nil {
		return err
	}
	if ok && answer == "yes" {
		s.tasks.Delete(id)
	}
	return nil
}

// setStatus presents the three-entry status menu and applies the
// choice. The selection is matched by substring so the glyph prefix
// never matters.
func (s *session) setStatus(id int) error {
	t := s.tasks.Get(id)
	if t == nil {
		return nil
	}

	candidates := []string{
		ui.DoneChoice(false),
		ui.TodoChoice(false),
		ui.OtherChoice(false),
	}

	answer, ok, err := s.picker.Pick(candidates, picker.Options{})
	if err != nil || !ok {
		return err
	}

	if strings.Contains(answer, "done") {
		t.Status = task.StatusDone
	}
	if strings.Contains(answer, "todo") {
		t.Status = task.StatusTodo
	}
	if strings.Contains(answer, "other") {
		t.Status = task.StatusOther
	}
	return nil
}

// editText prompts for replacement text, pre-filled with the current
// text. An abort or an empty result leaves the task unchanged.
func (s *session) editText(id int) error {
	t := s.tasks.Get(id)
	if t == nil {
		return nil
	}

	text, ok, err := s.picker.Input(picker.Options{
		Prompt: "new text: ",
		Query:  t.Text,
	})
	if err != nil {
		return err
	}
	if ok && text != "" {
		t.Text = text
	}
	return nil
}
