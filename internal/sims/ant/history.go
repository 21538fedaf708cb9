package ant

// historyDepth is how many transitions StepBack can undo.
const historyDepth = 3

// transition records everything one Step overwrote.
type transition struct {
	ant       Ant
	cellIndex int
	cellState uint8
	cellStep  uint64
	steps     uint64
}

// history is a fixed-capacity ring of the most recent transitions. Pushing
// onto a full ring overwrites the oldest entry.
type history struct {
	entries [historyDepth]transition
	head    int // slot the next push writes to
	n       int
}

func (h *history) push(t transition) {
	h.entries[h.head] = t
	h.head = (h.head + 1) % historyDepth
	if h.n < historyDepth {
		h.n++
	}
}

func (h *history) pop() (transition, bool) {
	if h.n == 0 {
		return transition{}, false
	}
	h.head = (h.head + historyDepth - 1) % historyDepth
	h.n--
	return h.entries[h.head], true
}

func (h *history) len() int { return h.n }

func (h *history) clear() {
	h.head = 0
	h.n = 0
}
