package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tdo-sh/tdo/internal/editor"
	"github.com/tdo-sh/tdo/internal/markdown"
	"github.com/tdo-sh/tdo/internal/picker"
	"github.com/tdo-sh/tdo/internal/ui"
	"github.com/tdo-sh/tdo/task"
)

var viewCmd = &cobra.Command{
	Use:     "view",
	Aliases: []string{"v"},
	Short:   "Show existing tasks",
	Args:    cobra.NoArgs,
	RunE:    runWithSession(userView),
}

var viewMarkdown bool

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a"},
	Short:   "Add new tasks",
	Args:    cobra.NoArgs,
	RunE:    runWithSession(userAdd),
}

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"r"},
	Short:   "Select tasks to remove",
	Args:    cobra.NoArgs,
	RunE:    runWithSession(userRemove),
}

var setCmd = &cobra.Command{
	Use:     "set",
	Aliases: []string{"s"},
	Short:   "Change status of tasks",
	Args:    cobra.NoArgs,
	RunE:    runWithSession(userSet),
}

var modifyCmd = &cobra.Command{
	Use:     "modify",
	Aliases: []string{"m"},
	Short:   "Change text of tasks",
	Args:    cobra.NoArgs,
	RunE:    runWithSession(userModify),
}

var editorCmd = &cobra.Command{
	Use:     "editor",
	Aliases: []string{"e"},
	Short:   "Open tasks with EDITOR",
	Args:    cobra.NoArgs,
	RunE:    runWithSession(userEditor),
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort tasks by status",
	Args:  cobra.NoArgs,
	RunE:  runWithSession(userSort),
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete completed tasks",
	Args:  cobra.NoArgs,
	RunE:  runWithSession(userClean),
}

func init() {
	rootCmd.AddCommand(viewCmd, addCmd, removeCmd, setCmd, modifyCmd, editorCmd, sortCmd, cleanCmd)

	viewCmd.Flags().BoolVar(&viewMarkdown, "markdown", false, "Render the file as markdown")
}

// userCommand pairs a command's picker-menu name with its handler.
type userCommand struct {
	name string
	run  func(*session) error
}

// userCommands is the interactive menu, in display order.
var userCommands = []userCommand{
	{"view", userView},
	{"add", userAdd},
	{"remove", userRemove},
	{"set", userSet},
	{"modify", userModify},
	{"editor", userEditor},
	{"sort", userSort},
	{"clean", userClean},
}

// runWithSession adapts a session handler to a cobra RunE.
func runWithSession(fn func(*session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return fn(s)
	}
}

// userView sorts the in-memory list and prints it. The sort is not
// persisted and the file is never written.
func userView(s *session) error {
	s.tasks.Sort()

	if viewMarkdown {
		fmt.Fprintf(s.out, "%s\n", markdown.Render(terminalWidth(), s.tasks.File()))
		return nil
	}

	opts := task.RenderOptions{Color: ui.Enabled()}
	fmt.Fprintf(s.out, "\n%s\n", s.tasks.Render(opts))
	return nil
}

// userAdd prompts for new task text until the user aborts or submits
// an empty entry. The file is written only when something was added.
func userAdd(s *session) error {
	modified := false

	for {
		text, ok, err := s.picker.Input(picker.Options{Prompt: "new task text: "})
		if err != nil {
			return err
		}
		if !ok || text == "" {
			break
		}
		s.tasks.Add(task.Task{
			ID:     s.tasks.NextID(),
			Text:   text,
			Status: task.StatusTodo,
		})
		modified = true
	}

	if !modified {
		return nil
	}
	return s.save()
}

// userRemove loops task pick then yes/no confirm, deleting on "yes".
// The file is rewritten when the loop ends even if nothing changed.
func userRemove(s *session) error {
	for {
		id, picked, err := s.pickTask("remove > ")
		if err != nil {
			return err
		}
		if !picked {
			break
		}
		if err := s.confirmDelete(id); err != nil {
			return err
		}
	}
	return s.save()
}

// userSet loops task pick then status pick.
func userSet(s *session) error {
	for {
		id, picked, err := s.pickTask("set > ")
		if err != nil {
			return err
		}
		if !picked {
			break
		}
		if err := s.setStatus(id); err != nil {
			return err
		}
	}
	return s.save()
}

// userModify loops task pick then free-text entry.
func userModify(s *session) error {
	for {
		id, picked, err := s.pickTask("modify > ")
		if err != nil {
			return err
		}
		if !picked {
			break
		}
		if err := s.editText(id); err != nil {
			return err
		}
	}
	return s.save()
}

// userEditor hands the file to an external editor. Any changes are the
// editor's; this process does not rewrite the file.
func userEditor(s *session) error {
	return editor.Edit(s.editorProgram, s.path)
}

func userSort(s *session) error {
	s.tasks.Sort()
	return s.save()
}

// userClean drops completed tasks, sorts what remains, and rewrites
// the file.
func userClean(s *session) error {
	s.tasks.DeleteDone()
	s.tasks.Sort()
	return s.save()
}

// terminalWidth returns the stdout width, or a conventional default
// when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 1 {
		return 80
	}
	return width
}
