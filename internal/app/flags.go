package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"langton/internal/sims/ant"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size  int
	Rules string
	Scale int
	TPS   int
	Speed float64
	Aged  bool
	HUD   int

	Set kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := ant.DefaultConfig()
	return &Config{Size: def.Size, Rules: def.Rules, Scale: 4, TPS: 60, Speed: 20, HUD: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid edge length in cells")
	fs.StringVar(&c.Rules, "rules", c.Rules, "turn rules, one R or L per cell state")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "ant steps per second")
	fs.BoolVar(&c.Aged, "aged", c.Aged, "shade cells by when they were first coloured")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.Var(&c.Set, "set", "engine override in key=value form (repeatable): size, rules, preset, mode")
}

// EngineConfig merges the explicit flags with any -set overrides, which win.
func (c *Config) EngineConfig() ant.Config {
	m := map[string]string{
		"size":  fmt.Sprint(c.Size),
		"rules": c.Rules,
	}
	for k, v := range c.Set.Map() {
		m[k] = v
	}
	return ant.FromMap(m)
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs keyed by name; later entries override earlier ones.
func (l kvList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Keys lists the override names in sorted order.
func (l kvList) Keys() []string {
	m := l.Map()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
