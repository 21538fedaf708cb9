package ui

import (
	"fmt"
	"strings"

	"langton/internal/core"
)

// statusLines flattens a parameter snapshot into "Label: value" rows, one
// blank-separated block per group. Keys listed in skip are omitted so that
// adjustable controls are not printed twice.
func statusLines(snap core.ParameterSnapshot, skip map[string]bool) []string {
	var lines []string
	for _, group := range snap.Groups {
		var block []string
		for _, p := range group.Params {
			if skip[p.Key] {
				continue
			}
			block = append(block, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
		if len(block) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.ToUpper(group.Name))
		lines = append(lines, block...)
	}
	return lines
}

// helpLines lists the keyboard bindings shown by the help overlay.
var helpLines = []string{
	"Space  play / pause",
	"N      step forward",
	"B      step back",
	"R      reset",
	"P      next preset",
	"1 / 2  discovery / simulation grid",
	"A      toggle age shading",
	"Up/Dn  speed",
	"H      toggle help",
	"Q/Esc  quit",
}
