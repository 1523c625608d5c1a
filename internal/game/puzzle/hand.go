package puzzle

import "gridplay/internal/game/shapes"

// HandSize is the number of shape slots dealt to each player.
const HandSize = 3

// Hand is an ordered fixed-length set of shape slots; a nil slot has been
// played. The hand refills as a batch only once every slot is nil.
type Hand [HandSize]*shapes.Shape

func (h *Hand) Slot(i int) (*shapes.Shape, bool) {
	if i < 0 || i >= HandSize || h[i] == nil {
		return nil, false
	}
	return h[i], true
}

// Take removes and returns the shape in slot i, or nil if the slot is empty
// or out of range.
func (h *Hand) Take(i int) *shapes.Shape {
	s, ok := h.Slot(i)
	if !ok {
		return nil
	}
	h[i] = nil
	return s
}

// Exhausted reports whether every slot has been played.
func (h *Hand) Exhausted() bool {
	for _, s := range h {
		if s != nil {
			return false
		}
	}
	return true
}

// Refill deals a full batch of shapes into the hand. It is a no-op unless
// the hand is exhausted.
func (h *Hand) Refill(d Dealer, b *Board) {
	if !h.Exhausted() {
		return
	}
	dealt := d.Deal(b, HandSize)
	for i := 0; i < HandSize && i < len(dealt); i++ {
		h[i] = dealt[i]
	}
}

// AnyFits reports whether at least one remaining shape in the hand can be
// legally placed somewhere on the board. A false result is the stalemate
// condition.
func (h *Hand) AnyFits(b *Board) bool {
	for _, s := range h {
		if s != nil && b.Fits(s.Matrix) {
			return true
		}
	}
	return false
}
