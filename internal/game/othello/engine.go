package othello

import "errors"

var ErrIllegalMove = errors.New("othello: illegal move")

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// capturesInDir walks outward from (r,c) along (dr,dc) and returns the run of
// opponent discs that would be flipped if player placed at (r,c). The run is
// empty unless it is terminated by one of player's own discs before the edge.
func (b *Board) capturesInDir(player Disc, r, c, dr, dc int) []Point {
	opp := player.Opponent()
	var run []Point
	cr, cc := r+dr, c+dc
	for in(cr, cc) && b[cr][cc] == opp {
		run = append(run, Point{Row: cr, Col: cc})
		cr += dr
		cc += dc
	}
	if len(run) == 0 || !in(cr, cc) || b[cr][cc] != player {
		return nil
	}
	return run
}

// IsLegal reports whether player may place at (r,c).
func (b *Board) IsLegal(player Disc, r, c int) bool {
	if !in(r, c) || b[r][c] != Empty {
		return false
	}
	for _, d := range directions {
		if b.capturesInDir(player, r, c, d[0], d[1]) != nil {
			return true
		}
	}
	return false
}

// LegalMoves returns every cell where player has at least one straight-line
// capture. Order is not significant, callers only test membership.
func (b *Board) LegalMoves(player Disc) []Point {
	var moves []Point
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.IsLegal(player, r, c) {
				moves = append(moves, Point{Row: r, Col: c})
			}
		}
	}
	return moves
}

func (b *Board) HasLegalMove(player Disc) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.IsLegal(player, r, c) {
				return true
			}
		}
	}
	return false
}

// Apply re-validates and applies player's move at (r,c), flipping every
// captured run in all 8 directions. An illegal move returns ErrIllegalMove
// and leaves the board untouched.
func (b *Board) Apply(player Disc, r, c int) error {
	if player != Black && player != White {
		return ErrIllegalMove
	}
	if !in(r, c) || b[r][c] != Empty {
		return ErrIllegalMove
	}
	var flips []Point
	for _, d := range directions {
		flips = append(flips, b.capturesInDir(player, r, c, d[0], d[1])...)
	}
	if len(flips) == 0 {
		return ErrIllegalMove
	}
	b[r][c] = player
	for _, p := range flips {
		b[p.Row][p.Col] = player
	}
	return nil
}

// Counts returns the number of black and white discs on the board.
func (b *Board) Counts() (black, white int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}
