package ant

import "strconv"

// Config controls the engine dimensions and initial rule table.
type Config struct {
	Size  int
	Rules string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: ModeSimulation.Size, Rules: "RL"}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= MaxSize {
			c.Size = parsed
		}
	}
	if v, ok := cfg["rules"]; ok {
		if clean := SanitizeRules(v); clean != "" && len(clean) <= MaxStates {
			c.Rules = clean
		}
	}
	if v, ok := cfg["preset"]; ok {
		if p, found := PresetByName(v); found {
			c.Rules = p.Rules
		}
	}
	if v, ok := cfg["mode"]; ok {
		if m, found := ModeByName(v); found {
			c.Size = m.Size
		}
	}
	return c
}
