package ant

import "strings"

// Preset is a named rule string known to produce an interesting pattern.
type Preset struct {
	Name  string
	Rules string
}

var presets = []Preset{
	{Name: "Classic", Rules: "RL"},
	{Name: "Square", Rules: "RLR"},
	{Name: "Symmetrical", Rules: "LRRRRRLLR"},
	{Name: "Tower", Rules: "LLRR"},
	{Name: "Chaos Edge", Rules: "RLLR"},
}

// Presets returns the built-in rule presets in display order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// PresetByName finds a preset ignoring case.
func PresetByName(name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Mode is a named grid size the front end can switch between.
type Mode struct {
	Name string
	Size int
}

var (
	// ModeDiscovery is a small grid for following individual steps.
	ModeDiscovery = Mode{Name: "discovery", Size: 15}
	// ModeSimulation is the default large grid.
	ModeSimulation = Mode{Name: "simulation", Size: 200}
)

// ModeByName finds a mode ignoring case.
func ModeByName(name string) (Mode, bool) {
	for _, m := range []Mode{ModeDiscovery, ModeSimulation} {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Mode{}, false
}
