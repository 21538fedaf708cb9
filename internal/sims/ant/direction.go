package ant

// Direction is the ant's heading. Adding one is a clockwise quarter turn.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Turn applies a rule directive to the heading.
func (d Direction) Turn(t Turn) Direction {
	if t == TurnRight {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Delta returns the unit offset of one step forward. Up decreases y.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		return "?"
	}
}

// Ant is the single mobile agent: a cell position and a heading.
type Ant struct {
	X, Y int
	Dir  Direction
}
