package solo

import (
	"errors"

	"gridplay/internal/game/puzzle"
)

var (
	ErrGameOver  = errors.New("solo: session is over")
	ErrEmptySlot = errors.New("solo: hand slot is empty")
	ErrNoFit     = errors.New("solo: shape does not fit there")
)

// Session is a single-player puzzle game on the 8x8 board. It starts playing
// immediately and ends when nothing in the hand fits anywhere.
type Session struct {
	Board    puzzle.Board
	Hand     puzzle.Hand
	Progress puzzle.Progress
	Over     bool

	dealer puzzle.Dealer
}

func NewSession(d puzzle.Dealer) *Session {
	s := &Session{
		Board:  puzzle.NewBoard(puzzle.SoloSize),
		dealer: d,
	}
	s.Hand.Refill(d, &s.Board)
	return s
}

// Place plays the shape in the given hand slot at (row,col), resolves clears
// and scoring, refills an exhausted hand, and checks for stalemate.
func (s *Session) Place(slot, row, col int) (puzzle.MoveScore, error) {
	if s.Over {
		return puzzle.MoveScore{}, ErrGameOver
	}
	shape, ok := s.Hand.Slot(slot)
	if !ok {
		return puzzle.MoveScore{}, ErrEmptySlot
	}
	if !s.Board.CanPlace(shape.Matrix, row, col) {
		return puzzle.MoveScore{}, ErrNoFit
	}
	s.Hand.Take(slot)
	placed := s.Board.Place(shape.Matrix, row, col, puzzle.OwnerSolo)
	rows, cols := s.Board.FullLines()
	lineCount := len(rows) + len(cols)
	if lineCount > 0 {
		s.Board.ClearLines(rows, cols)
	}
	ms := s.Progress.Record(placed, lineCount, s.Board.IsEmpty())
	s.Hand.Refill(s.dealer, &s.Board)
	if !s.Hand.AnyFits(&s.Board) {
		s.Over = true
	}
	return ms, nil
}
