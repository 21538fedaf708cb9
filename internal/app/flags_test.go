package app

import (
	"flag"
	"slices"
	"testing"

	"langton/internal/sims/ant"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ant", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-size", "31", "-rules", "llrr", "-speed", "2.5", "-aged", "-set", "preset=square", "-set", "mode = discovery"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Size != 31 || cfg.Speed != 2.5 || !cfg.Aged {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if got := cfg.Set.Keys(); !slices.Equal(got, []string{"mode", "preset"}) {
		t.Fatalf("Keys = %v", got)
	}

	eng := cfg.EngineConfig()
	if eng != (ant.Config{Size: 15, Rules: "RLR"}) {
		t.Fatalf("EngineConfig = %+v", eng)
	}
}

func TestConfigSanitisesRulesFlag(t *testing.T) {
	cfg := NewConfig()
	cfg.Rules = "l-r-r"
	if got := cfg.EngineConfig(); got.Rules != "LRR" || got.Size != ant.DefaultConfig().Size {
		t.Fatalf("EngineConfig = %+v", got)
	}
}

func TestKVListRejectsMissingSeparator(t *testing.T) {
	var l kvList
	if err := l.Set("preset"); err == nil {
		t.Fatal("expected error for value without '='")
	}
	if err := l.Set("rules=RL"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if l.String() != "rules=RL" {
		t.Fatalf("String = %q", l.String())
	}
}
