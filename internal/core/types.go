package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement so the
// render and HUD layers can poll it every frame.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step()
	Cells() []uint8
}
