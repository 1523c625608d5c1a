package othello

// Size is the fixed board dimension.
const Size = 8

type Disc int8

const (
	Empty Disc = iota
	Black
	White
)

func (d Disc) Opponent() Disc {
	switch d {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (d Disc) String() string {
	switch d {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// Board is a row-major 8x8 grid. The zero value is an all-empty board;
// use NewBoard for the standard starting position.
type Board [Size][Size]Disc

type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewBoard returns a board in the standard starting configuration:
// the central 2x2 filled with alternating stones.
func NewBoard() Board {
	var b Board
	b[3][3] = White
	b[3][4] = Black
	b[4][3] = Black
	b[4][4] = White
	return b
}

func in(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}
