package ant

import (
	"errors"
	"fmt"
	"strings"
)

// Turn is the directive applied to the ant's heading for a given cell state.
type Turn uint8

const (
	// TurnRight rotates the heading clockwise.
	TurnRight Turn = iota
	// TurnLeft rotates the heading counter-clockwise.
	TurnLeft
)

// MaxStates bounds the rule length; cell states are stored as uint8.
const MaxStates = 256

// ErrInvalidRules is matched by every InvalidRuleError via errors.Is.
var ErrInvalidRules = errors.New("invalid rules")

// InvalidRuleError reports a rule string that cannot drive the engine.
// Index is the offending position, or -1 when the table as a whole is wrong.
type InvalidRuleError struct {
	Rules  string
	Index  int
	Reason string
}

func (e *InvalidRuleError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid rules %q at %d: %s", e.Rules, e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid rules %q: %s", e.Rules, e.Reason)
}

// Is lets callers match any rule error against ErrInvalidRules.
func (e *InvalidRuleError) Is(target error) bool { return target == ErrInvalidRules }

// Rules maps each cell state to the turn taken when the ant stands on it. Its
// length is the number of distinct cell states.
type Rules []Turn

// ParseRules converts an R/L string into a rule table. Input is taken as-is;
// use SanitizeRules first for user-typed text.
func ParseRules(s string) (Rules, error) {
	if s == "" {
		return nil, &InvalidRuleError{Rules: s, Index: -1, Reason: "empty"}
	}
	if len(s) > MaxStates {
		return nil, &InvalidRuleError{Rules: s, Index: -1, Reason: fmt.Sprintf("more than %d states", MaxStates)}
	}
	rules := make(Rules, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'R':
			rules[i] = TurnRight
		case 'L':
			rules[i] = TurnLeft
		default:
			return nil, &InvalidRuleError{Rules: s, Index: i, Reason: fmt.Sprintf("unknown directive %q", s[i])}
		}
	}
	return rules, nil
}

// MustParseRules is like ParseRules but panics on error. Intended for
// package-level literals.
func MustParseRules(s string) Rules {
	r, err := ParseRules(s)
	if err != nil {
		panic(err)
	}
	return r
}

// SanitizeRules uppercases s and drops every character that is not R or L.
func SanitizeRules(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r == 'R' || r == 'L' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate checks a table built without ParseRules.
func (r Rules) Validate() error {
	if len(r) == 0 {
		return &InvalidRuleError{Rules: "", Index: -1, Reason: "empty"}
	}
	if len(r) > MaxStates {
		return &InvalidRuleError{Rules: r.String(), Index: -1, Reason: fmt.Sprintf("more than %d states", MaxStates)}
	}
	for i, t := range r {
		if t != TurnRight && t != TurnLeft {
			return &InvalidRuleError{Rules: r.String(), Index: i, Reason: fmt.Sprintf("unknown directive %d", t)}
		}
	}
	return nil
}

// String renders the table back into R/L form; unknown directives print as '?'.
func (r Rules) String() string {
	b := make([]byte, len(r))
	for i, t := range r {
		switch t {
		case TurnRight:
			b[i] = 'R'
		case TurnLeft:
			b[i] = 'L'
		default:
			b[i] = '?'
		}
	}
	return string(b)
}
