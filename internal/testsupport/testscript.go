// Package testsupport holds helpers shared by the CLI test suites.
package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	tdoPath   string
	buildErr  error
)

// BuildTdo builds the tdo binary once and returns its path.
func BuildTdo(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "tdo-bin-")
		if err != nil {
			buildErr = err
			return
		}

		tdoPath = filepath.Join(binDir, "tdo")
		cmd := exec.Command("go", "build", "-o", tdoPath, "./cmd/tdo")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build tdo: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return tdoPath
}

// SetupScriptEnv configures common environment variables for testscript.
// Scripts get a fake HOME so they never read the developer's config,
// and NO_COLOR so rendered output is stable bytes.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TDO", BuildTdo(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(filepath.Join(homeDir, ".config", "tdo"), 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdCmpTrim compares a file against another, ignoring a single
// trailing newline on either side. Todo files are written without one,
// while txtar archive entries always end with one.
func CmdCmpTrim(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 2 {
		ts.Fatalf("usage: cmptrim FILE1 FILE2")
	}

	got := strings.TrimSuffix(ts.ReadFile(args[0]), "\n")
	want := strings.TrimSuffix(ts.ReadFile(args[1]), "\n")
	equal := got == want
	if equal == neg {
		ts.Fatalf("%s and %s differ:\n%s\n--\n%s", args[0], args[1], got, want)
	}
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
