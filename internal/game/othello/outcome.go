package othello

// TurnResult is the outcome of the turn-resolution cascade run after every
// applied move: try the opponent, fall back to the mover, else the game ends.
type TurnResult struct {
	Next     Disc // whose turn it is now (Empty once finished)
	Passed   bool // opponent had no legal move but the mover does
	Finished bool
	Winner   Disc // Empty means a draw; only meaningful when Finished
}

// ResolveTurn decides who moves next after mover has just placed.
func (b *Board) ResolveTurn(mover Disc) TurnResult {
	opp := mover.Opponent()
	if b.HasLegalMove(opp) {
		return TurnResult{Next: opp}
	}
	if b.HasLegalMove(mover) {
		return TurnResult{Next: mover, Passed: true}
	}
	black, white := b.Counts()
	res := TurnResult{Finished: true}
	switch {
	case black > white:
		res.Winner = Black
	case white > black:
		res.Winner = White
	}
	return res
}
