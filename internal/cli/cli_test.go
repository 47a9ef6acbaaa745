package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := map[string]bool{
		"generate":   false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if c.Logger.GetLevel() != log.InfoLevel {
		t.Errorf("initial level = %v, want info", c.Logger.GetLevel())
	}

	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level after SetLogLevel = %v, want debug", c.Logger.GetLevel())
	}
}

func TestGenerateCommandFlags(t *testing.T) {
	cmd := New(io.Discard, LogInfo).generateCommand()

	for _, name := range []string{"output", "layout", "no-cache"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("generate command is missing --%s", name)
		}
	}
}

func TestServeCommandFlags(t *testing.T) {
	cmd := New(io.Discard, LogInfo).serveCommand()

	for _, name := range []string{"addr", "cache-dir", "redis-addr", "layout"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("serve command is missing --%s", name)
		}
	}

	if got := cmd.Flags().Lookup("addr").DefValue; got != ":8080" {
		t.Errorf("--addr default = %q, want :8080", got)
	}
}

func TestNewCacheDisabled(t *testing.T) {
	c := newCache(true)
	if c == nil {
		t.Fatal("newCache(true) returned nil")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
