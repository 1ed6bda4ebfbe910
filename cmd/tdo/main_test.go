package main

import "testing"

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "tdo" {
		t.Fatalf("expected root command name tdo, got %q", rootCmd.Use)
	}
}

func TestSubcommandAliases(t *testing.T) {
	wantAliases := map[string]string{
		"view":   "v",
		"add":    "a",
		"remove": "r",
		"set":    "s",
		"modify": "m",
		"editor": "e",
	}

	for _, cmd := range rootCmd.Commands() {
		alias, wanted := wantAliases[cmd.Name()]
		if !wanted {
			continue
		}
		if len(cmd.Aliases) != 1 || cmd.Aliases[0] != alias {
			t.Errorf("%s aliases = %v, want [%s]", cmd.Name(), cmd.Aliases, alias)
		}
		delete(wantAliases, cmd.Name())
	}
	for name := range wantAliases {
		t.Errorf("subcommand %s not registered", name)
	}
}

func TestInteractiveMenuOrder(t *testing.T) {
	want := []string{"view", "add", "remove", "set", "modify", "editor", "sort", "clean"}
	if len(userCommands) != len(want) {
		t.Fatalf("menu has %d entries, want %d", len(userCommands), len(want))
	}
	for i, c := range userCommands {
		if c.name != want[i] {
			t.Errorf("menu[%d] = %q, want %q", i, c.name, want[i])
		}
	}
}

func TestFileFlagAlias(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	if err := flags.Set("path", "somewhere.md"); err != nil {
		t.Fatalf("setting --path alias: %v", err)
	}
	t.Cleanup(func() { flagFile = "" })

	if flagFile != "somewhere.md" {
		t.Errorf("flagFile = %q after --path, want %q", flagFile, "somewhere.md")
	}
}
