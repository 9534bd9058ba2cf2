package game

import "github.com/vovakirdan/tui-rubiks/internal/cube"

// DefaultHistoryCapacity is the number of moves kept for undo.
const DefaultHistoryCapacity = 100

// History is a fixed-capacity ring buffer of moves.
// When full, Push drops the oldest move.
type History struct {
	buf   []cube.Move
	head  int // index of the oldest move
	count int
}

// NewHistory creates an empty history holding at most capacity moves.
// A capacity below 1 is raised to 1.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]cube.Move, capacity)}
}

// Push appends m, evicting the oldest move when the buffer is full.
func (h *History) Push(m cube.Move) {
	if h.count == len(h.buf) {
		h.buf[h.head] = m
		h.head = (h.head + 1) % len(h.buf)
		return
	}
	h.buf[(h.head+h.count)%len(h.buf)] = m
	h.count++
}

// Pop removes and returns the newest move.
func (h *History) Pop() (cube.Move, bool) {
	if h.count == 0 {
		return cube.Move{}, false
	}
	h.count--
	return h.buf[(h.head+h.count)%len(h.buf)], true
}

// Peek returns the newest move without removing it.
func (h *History) Peek() (cube.Move, bool) {
	if h.count == 0 {
		return cube.Move{}, false
	}
	return h.buf[(h.head+h.count-1)%len(h.buf)], true
}

// Len returns the number of stored moves.
func (h *History) Len() int { return h.count }

// Cap returns the maximum number of stored moves.
func (h *History) Cap() int { return len(h.buf) }

// Clear removes all moves.
func (h *History) Clear() {
	h.head = 0
	h.count = 0
}

// Moves returns the stored moves, oldest first.
func (h *History) Moves() []cube.Move {
	out := make([]cube.Move, h.count)
	for i := range out {
		out[i] = h.buf[(h.head+i)%len(h.buf)]
	}
	return out
}
