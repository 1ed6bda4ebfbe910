package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/tdo-sh/tdo/internal/testsupport"
)

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"cmptrim": testsupport.CmdCmpTrim,
		},
	})
}
