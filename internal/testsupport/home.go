package testsupport

import "testing"

// SetupTestHome points HOME at a fresh temp directory so tests never
// read the developer's real config. Returns the new home path.
func SetupTestHome(t *testing.T) string {
	t.Helper()
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	return homeDir
}
