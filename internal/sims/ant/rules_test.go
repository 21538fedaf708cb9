package ant

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRules(t *testing.T) {
	r, err := ParseRules("RLLR")
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	want := Rules{TurnRight, TurnLeft, TurnLeft, TurnRight}
	if len(r) != len(want) {
		t.Fatalf("len = %d, want %d", len(r), len(want))
	}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("rule %d = %v, want %v", i, r[i], want[i])
		}
	}
	if r.String() != "RLLR" {
		t.Fatalf("String() = %q", r.String())
	}
}

func TestParseRulesErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		index int
	}{
		{"empty", "", -1},
		{"lowercase", "Rl", 1},
		{"foreign", "RLX", 2},
		{"too long", strings.Repeat("R", MaxStates+1), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRules(tc.in)
			if !errors.Is(err, ErrInvalidRules) {
				t.Fatalf("err = %v, want ErrInvalidRules", err)
			}
			var ruleErr *InvalidRuleError
			if !errors.As(err, &ruleErr) {
				t.Fatalf("err %T is not *InvalidRuleError", err)
			}
			if ruleErr.Index != tc.index {
				t.Fatalf("index = %d, want %d", ruleErr.Index, tc.index)
			}
			if ruleErr.Error() == "" {
				t.Fatal("empty error message")
			}
		})
	}
}

func TestParseRulesAcceptsMaxStates(t *testing.T) {
	r, err := ParseRules(strings.Repeat("L", MaxStates))
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	e, err := New(1, r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < MaxStates; i++ {
		e.Step()
	}
	if e.Cells()[0] != 0 {
		t.Fatalf("256-state cell should wrap to 0, got %d", e.Cells()[0])
	}
}

func TestSanitizeRules(t *testing.T) {
	cases := map[string]string{
		"rl":          "RL",
		" r-l-r ":     "RLR",
		"LxRyZ":       "LR",
		"":            "",
		"abc":         "",
		"lrrrrrllr\n": "LRRRRRLLR",
	}
	for in, want := range cases {
		if got := SanitizeRules(in); got != want {
			t.Fatalf("SanitizeRules(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseRules(SanitizeRules("xyz")); !errors.Is(err, ErrInvalidRules) {
		t.Fatal("sanitising to nothing must still be rejected")
	}
}

func TestMustParseRulesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustParseRules("Q")
}

func TestDirectionTurns(t *testing.T) {
	for d := Up; d <= Left; d++ {
		if got := d.Turn(TurnRight).Turn(TurnLeft); got != d {
			t.Fatalf("%v right then left = %v", d, got)
		}
		r := d
		for i := 0; i < 4; i++ {
			r = r.Turn(TurnRight)
		}
		if r != d {
			t.Fatalf("four right turns from %v ended at %v", d, r)
		}
	}
	if Up.Turn(TurnLeft) != Left || Left.Turn(TurnRight) != Up {
		t.Fatal("turns must wrap between UP and LEFT")
	}
	if dx, dy := Up.Delta(); dx != 0 || dy != -1 {
		t.Fatalf("Up.Delta() = (%d,%d)", dx, dy)
	}
}
