package ant

import (
	"strconv"

	"langton/internal/core"
)

// Parameters reports the engine state for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("size", "Size", e.size),
				intParam("states", "States", len(e.rules)),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				{Key: "rules", Label: "Rules", Type: core.ParamTypeString, Value: e.rules.String()},
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "steps", Label: "Steps", Type: core.ParamTypeInt, Value: strconv.FormatUint(e.steps, 10)},
				{Key: "time", Label: "Time", Type: core.ParamTypeString, Value: FormatElapsed(e.elapsed)},
				{Key: "heading", Label: "Heading", Type: core.ParamTypeString, Value: e.ant.Dir.String()},
				intParam("undo", "Undo depth", e.hist.len()),
				{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(e.paused)},
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable values.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "size", Label: "Size", Type: core.ParamTypeInt, Step: 5, Min: 1, Max: MaxSize, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer control. Only "size" is adjustable;
// changing it resizes and resets the engine.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "size":
		if value < 1 {
			value = 1
		}
		if value > MaxSize {
			value = MaxSize
		}
		return e.Resize(value) == nil
	}
	return false
}

// SetStringParameter applies a text control. Only "rules" is adjustable; the
// value is sanitised first and rejected if nothing usable remains.
func (e *Engine) SetStringParameter(key string, value string) bool {
	switch key {
	case "rules":
		return e.SetRulesString(SanitizeRules(value)) == nil
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
