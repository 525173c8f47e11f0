package log_test

import (
	"testing"

	"github.com/mwantia/namespace/log"
)

func TestParse(t *testing.T) {
	cases := map[string]log.LogLevel{
		"debug": log.Debug,
		"INFO":  log.Info,
		"Warn":  log.Warn,
		"error": log.Error,
		"fatal": log.Fatal,
	}

	for name, expected := range cases {
		t.Run(name, func(tst *testing.T) {
			level, err := log.Parse(name)
			if err != nil {
				tst.Fatalf("Parse(%q) failed: %v", name, err)
			}
			if level != expected {
				tst.Errorf("Parse(%q) = %s, expected %s", name, level, expected)
			}
		})
	}

	if _, err := log.Parse("verbose"); err == nil {
		t.Error("expected an unknown level name to fail")
	}
}
