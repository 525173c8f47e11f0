package cmd_test

import (
	"testing"

	"github.com/mwantia/namespace/cmd"
)

func testFlagSet() *cmd.CommandFlagSet {
	return &cmd.CommandFlagSet{
		Flags: map[string]*cmd.CommandFlag{
			"version": {Name: "version", Short: "v", Type: "int"},
			"all":     {Name: "all", Short: "a", Type: "bool"},
			"format":  {Name: "format", Type: "string", Default: "plain"},
		},
	}
}

func TestParser_Flags(t *testing.T) {
	parser := cmd.NewParser(testFlagSet())

	args, err := parser.Parse([]string{"-v", "3", "--all", "a.b.txt"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := args.Int("version", 0); got != 3 {
		t.Errorf("version = %d, expected 3", got)
	}
	if !args.Bool("all") {
		t.Error("expected --all to be set")
	}
	if got := args.String("format", ""); got != "plain" {
		t.Errorf("format = %q, expected the default %q", got, "plain")
	}
	if len(args.Args) != 1 || args.Args[0] != "a.b.txt" {
		t.Errorf("positional args = %v, expected [a.b.txt]", args.Args)
	}
}

func TestParser_LongFlagValue(t *testing.T) {
	parser := cmd.NewParser(testFlagSet())

	args, err := parser.Parse([]string{"--version=7", "--format", "json"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := args.Int("version", 0); got != 7 {
		t.Errorf("version = %d, expected 7", got)
	}
	if got := args.String("format", ""); got != "json" {
		t.Errorf("format = %q, expected %q", got, "json")
	}
}

func TestParser_Errors(t *testing.T) {
	parser := cmd.NewParser(testFlagSet())

	cases := map[string][]string{
		"unknown long flag":  {"--unknown"},
		"unknown short flag": {"-x"},
		"missing value":      {"--version"},
		"invalid int":        {"--version", "seven"},
	}

	for name, raw := range cases {
		t.Run(name, func(tst *testing.T) {
			if _, err := parser.Parse(raw); err == nil {
				tst.Errorf("Parse(%v) succeeded, expected an error", raw)
			}
		})
	}
}

func TestParser_NilFlagSet(t *testing.T) {
	parser := cmd.NewParser(nil)

	args, err := parser.Parse([]string{"a.b.txt", "--", "--not-a-flag"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(args.Args) != 2 {
		t.Errorf("positional args = %v, expected 2 entries", args.Args)
	}
}
