package ant

import (
	"errors"
	"fmt"
	"time"

	"langton/internal/core"
)

// MaxSize bounds the grid edge length.
const MaxSize = 4096

// ErrInvalidSize is returned for grid sizes outside [1, MaxSize].
var ErrInvalidSize = errors.New("invalid grid size")

// Engine runs a generalized Langton's ant on a square toroidal grid.
//
// Slices returned by Cells and FirstSteps alias engine memory and are only
// valid until the next mutating call. Engine is not safe for concurrent use.
type Engine struct {
	size  int
	rules Rules

	grid       *core.ByteGrid
	firstSteps []uint64

	ant   Ant
	steps uint64
	hist  history

	elapsed time.Duration
	paused  bool
}

// New returns an engine of size×size cells driven by rules. The engine starts
// paused with the ant at the centre heading up.
func New(size int, rules Rules) (*Engine, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		rules:  append(Rules(nil), rules...),
		paused: true,
	}
	e.allocate(size)
	e.Reset()
	return e, nil
}

// NewWithConfig builds an engine from a Config.
func NewWithConfig(cfg Config) (*Engine, error) {
	rules, err := ParseRules(cfg.Rules)
	if err != nil {
		return nil, err
	}
	return New(cfg.Size, rules)
}

func checkSize(size int) error {
	if size < 1 || size > MaxSize {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidSize, size, MaxSize)
	}
	return nil
}

func (e *Engine) allocate(size int) {
	e.size = size
	e.grid = core.NewByteGrid(size, size)
	e.firstSteps = make([]uint64, size*size)
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "langton" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.size, H: e.size} }

// Cells exposes the cell states in row-major order.
func (e *Engine) Cells() []uint8 { return e.grid.Cells() }

// FirstSteps exposes, per cell, the 1-based step at which it was first
// coloured, or 0 if it never was.
func (e *Engine) FirstSteps() []uint64 { return e.firstSteps }

// Ant returns the agent's position and heading.
func (e *Engine) Ant() Ant { return e.ant }

// Steps returns the number of forward steps taken since the last reset.
func (e *Engine) Steps() uint64 { return e.steps }

// Rules returns a copy of the active rule table.
func (e *Engine) Rules() Rules { return append(Rules(nil), e.rules...) }

// States returns the number of distinct cell states.
func (e *Engine) States() int { return len(e.rules) }

// HistoryLen reports how many steps can currently be undone.
func (e *Engine) HistoryLen() int { return e.hist.len() }

// Paused reports whether the driving loop should hold.
func (e *Engine) Paused() bool { return e.paused }

// SetPaused sets the paused flag.
func (e *Engine) SetPaused(p bool) { e.paused = p }

// TogglePause flips the paused flag and returns the new value.
func (e *Engine) TogglePause() bool {
	e.paused = !e.paused
	return e.paused
}

// Elapsed returns the externally accumulated run time.
func (e *Engine) Elapsed() time.Duration { return e.elapsed }

// AddElapsed advances the run-time accumulator. The engine never does this itself.
func (e *Engine) AddElapsed(d time.Duration) { e.elapsed += d }

// Step performs one transition: read the cell under the ant, turn, advance the
// cell's state, move forward with wrap-around.
func (e *Engine) Step() {
	idx := e.grid.Index(e.ant.X, e.ant.Y)
	cells := e.grid.Cells()
	state := cells[idx]

	e.hist.push(transition{
		ant:       e.ant,
		cellIndex: idx,
		cellState: state,
		cellStep:  e.firstSteps[idx],
		steps:     e.steps,
	})

	e.ant.Dir = e.ant.Dir.Turn(e.rules[state])
	cells[idx] = uint8((int(state) + 1) % len(e.rules))
	if e.firstSteps[idx] == 0 {
		e.firstSteps[idx] = e.steps + 1
	}

	dx, dy := e.ant.Dir.Delta()
	e.ant.X, e.ant.Y = e.grid.Wrap(e.ant.X+dx, e.ant.Y+dy)
	e.steps++
}

// StepBack undoes the most recent Step. It reports false and changes nothing
// when no recorded transition remains.
func (e *Engine) StepBack() bool {
	t, ok := e.hist.pop()
	if !ok {
		return false
	}
	e.ant = t.ant
	e.steps = t.steps
	e.grid.Cells()[t.cellIndex] = t.cellState
	e.firstSteps[t.cellIndex] = t.cellStep
	return true
}

// Reset clears the grid, recentres the ant heading up, and zeroes the step
// counter, elapsed time and history. Size, rules and the paused flag are kept.
func (e *Engine) Reset() {
	e.grid.Clear()
	clear(e.firstSteps)
	e.ant = Ant{X: e.size / 2, Y: e.size / 2, Dir: Up}
	e.steps = 0
	e.elapsed = 0
	e.hist.clear()
}

// SetRules replaces the rule table and resets. An invalid table is rejected
// without touching the current state.
func (e *Engine) SetRules(rules Rules) error {
	if err := rules.Validate(); err != nil {
		return err
	}
	e.rules = append(e.rules[:0], rules...)
	e.Reset()
	return nil
}

// SetRulesString parses s and applies it with SetRules.
func (e *Engine) SetRulesString(s string) error {
	rules, err := ParseRules(s)
	if err != nil {
		return err
	}
	return e.SetRules(rules)
}

// Resize reallocates the grid at the new edge length and resets. Prior
// content is discarded even when size is unchanged.
func (e *Engine) Resize(size int) error {
	if err := checkSize(size); err != nil {
		return err
	}
	e.allocate(size)
	e.Reset()
	return nil
}

// SetMode resizes to the mode's grid and pauses.
func (e *Engine) SetMode(m Mode) error {
	if err := e.Resize(m.Size); err != nil {
		return fmt.Errorf("mode %s: %w", m.Name, err)
	}
	e.paused = true
	return nil
}
