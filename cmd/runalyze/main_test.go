package main

import (
	"testing"

	"github.com/urfave/cli/v3"
)

func TestRootCommand(t *testing.T) {
	cmd := rootCommand()

	if cmd.Name != "runalyze" {
		t.Errorf("Command name = %v, want %v", cmd.Name, "runalyze")
	}
	if cmd.Action == nil {
		t.Error("Root command should have an Action")
	}

	wantFlags := map[string]string{
		"dryrun": "n",
		"silent": "s",
		"token":  "t",
		"config": "c",
		"verify": "V",
		"open":   "o",
	}

	flagAliases := make(map[string][]string)
	for _, flag := range cmd.Flags {
		switch f := flag.(type) {
		case *cli.BoolFlag:
			flagAliases[f.Name] = f.Aliases
		case *cli.StringFlag:
			flagAliases[f.Name] = f.Aliases
		}
	}

	for name, alias := range wantFlags {
		aliases, ok := flagAliases[name]
		if !ok {
			t.Errorf("Expected %q flag", name)
			continue
		}
		if len(aliases) != 1 || aliases[0] != alias {
			t.Errorf("Flag %q aliases = %v, want [%s]", name, aliases, alias)
		}
	}
}
