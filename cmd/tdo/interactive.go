package main

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/tdo-sh/tdo/internal/picker"
)

// runInteractive is the root command: no subcommand was named, so loop
// a command picker until the user aborts. One session is shared across
// iterations; the file is not reloaded between commands.
func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	for {
		ran, err := interactiveOnce(s)
		if err != nil {
			return err
		}
		if !ran {
			return nil
		}
	}
}

// interactiveOnce shows the command picker and runs the chosen
// handler. ran is false when the user aborts, which ends the loop with
// exit status 0.
func interactiveOnce(s *session) (ran bool, err error) {
	names := make([]string, len(userCommands))
	for i, c := range userCommands {
		names[i] = c.name
	}

	name, ok, err := s.picker.Pick(names, picker.Options{
		Preview: viewPreview(s.path),
	})
	if err != nil || !ok {
		return false, err
	}

	for _, c := range userCommands {
		if c.name == name {
			return true, c.run(s)
		}
	}
	return false, nil
}

// viewPreview runs this binary's own view subcommand against the
// session's file, so the picker's preview pane always shows the
// current list.
func viewPreview(path string) picker.PreviewFunc {
	return func(width, height int) string {
		exe, err := os.Executable()
		if err != nil {
			return ""
		}
		// Preview content is best-effort; on failure the pane shows
		// whatever the command printed.
		output, _ := exec.Command(exe, "view", "--file", path).CombinedOutput()
		return string(output)
	}
}
