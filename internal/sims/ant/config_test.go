package ant

import (
	"testing"
	"time"
)

func TestFromMap(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v", got)
	}
	cases := []struct {
		name string
		in   map[string]string
		want Config
	}{
		{"size and rules", map[string]string{"size": "31", "rules": "llrr"}, Config{Size: 31, Rules: "LLRR"}},
		{"bad size kept", map[string]string{"size": "-4"}, Config{Size: 200, Rules: "RL"}},
		{"junk rules kept", map[string]string{"rules": "xyz"}, Config{Size: 200, Rules: "RL"}},
		{"preset", map[string]string{"preset": "chaos edge"}, Config{Size: 200, Rules: "RLLR"}},
		{"mode", map[string]string{"mode": "Discovery"}, Config{Size: 15, Rules: "RL"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromMap(tc.in); got != tc.want {
				t.Fatalf("FromMap = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPresetsParse(t *testing.T) {
	ps := Presets()
	if len(ps) == 0 || ps[0].Rules != "RL" {
		t.Fatalf("unexpected presets %+v", ps)
	}
	for _, p := range ps {
		if _, err := ParseRules(p.Rules); err != nil {
			t.Fatalf("preset %s: %v", p.Name, err)
		}
	}
	ps[0].Rules = "LLL"
	if Presets()[0].Rules != "RL" {
		t.Fatal("Presets must return a copy")
	}
	if _, ok := PresetByName("nope"); ok {
		t.Fatal("unknown preset found")
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := map[time.Duration]string{
		0:                        "00:00.00",
		61234 * time.Millisecond: "01:01.23",
		-time.Second:             "00:00.00",
		75 * time.Minute:         "75:00.00",
	}
	for in, want := range cases {
		if got := FormatElapsed(in); got != want {
			t.Fatalf("FormatElapsed(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestParametersAndSetters(t *testing.T) {
	e, err := NewWithConfig(Config{Size: 11, Rules: "RLR"})
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	e.Step()
	snap := e.Parameters()
	for key, want := range map[string]string{
		"size": "11", "states": "3", "rules": "RLR", "steps": "1", "heading": "RIGHT", "undo": "1", "paused": "true",
	} {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("param %s = %q (found %v), want %q", key, p.Value, ok, want)
		}
	}

	if !e.SetIntParameter("size", 0) || e.Size().W != 1 {
		t.Fatalf("size control should clamp to 1, got %d", e.Size().W)
	}
	if e.SetIntParameter("speed", 3) {
		t.Fatal("unknown int key accepted")
	}
	if !e.SetStringParameter("rules", "l r r") || e.Rules().String() != "LRR" {
		t.Fatalf("rules control: %s", e.Rules())
	}
	if e.SetStringParameter("rules", "123") {
		t.Fatal("rules control accepted an empty table")
	}
	if len(e.ParameterControls()) == 0 {
		t.Fatal("expected at least one HUD control")
	}
}
