// Package paths resolves which todo file a command operates on.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocalFile is the todo file looked for in the current directory.
const LocalFile = ".todo.md"

// ErrNoFile is returned when neither a local file nor a configured
// default exists.
var ErrNoFile = errors.New("file " + LocalFile + " not found in current directory and no default is set")

// Check verifies that path names a regular file.
func Check(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("path does not lead to a valid file: %s", path)
	}
	return nil
}

// Resolve picks the todo file for this invocation: the local .todo.md
// in cwd when present, the configured default after that. usedDefault
// reports that the fallback was taken, so callers can tell the user
// which file they got.
func Resolve(cwd, defaultFile string) (path string, usedDefault bool, err error) {
	local := filepath.Join(cwd, LocalFile)
	if err := Check(local); err == nil {
		return local, false, nil
	}

	if defaultFile == "" {
		return "", false, ErrNoFile
	}
	if err := Check(defaultFile); err != nil {
		return "", false, err
	}
	return defaultFile, true, nil
}
