package puzzle

import "gridplay/internal/game/shapes"

// Board dimensions by variant.
const (
	SoloSize = 8
	DuelSize = 10
)

// Owner tags a filled cell. Zero means empty; networked play uses one tag per
// seat so cleared lines can be attributed, solo play only ever uses OwnerSolo.
type Owner int8

const (
	None   Owner = 0
	Owner1 Owner = 1
	Owner2 Owner = 2

	OwnerSolo = Owner1
)

type Board struct {
	Size  int       `json:"size"`
	Cells [][]Owner `json:"cells"`
}

func NewBoard(size int) Board {
	if size <= 0 {
		size = DuelSize
	}
	cells := make([][]Owner, size)
	for i := range cells {
		cells[i] = make([]Owner, size)
	}
	return Board{Size: size, Cells: cells}
}

// CanPlace reports whether every filled cell of m, overlaid with its top-left
// at (row,col), lands in bounds on an empty board cell.
func (b *Board) CanPlace(m shapes.Matrix, row, col int) bool {
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if !m[r][c] {
				continue
			}
			br, bc := row+r, col+c
			if br < 0 || br >= b.Size || bc < 0 || bc >= b.Size {
				return false
			}
			if b.Cells[br][bc] != None {
				return false
			}
		}
	}
	return true
}

// Place stamps m onto the board with owner and returns the number of cells
// placed (the shape area). Callers must have checked CanPlace.
func (b *Board) Place(m shapes.Matrix, row, col int, owner Owner) int {
	placed := 0
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if m[r][c] {
				b.Cells[row+r][col+c] = owner
				placed++
			}
		}
	}
	return placed
}

// FullLines returns the indices of fully occupied rows and columns. Both are
// computed against the current board before any clearing, so a cell at the
// intersection of a full row and a full column counts toward both.
func (b *Board) FullLines() (rows, cols []int) {
	for r := 0; r < b.Size; r++ {
		full := true
		for c := 0; c < b.Size; c++ {
			if b.Cells[r][c] == None {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, r)
		}
	}
	for c := 0; c < b.Size; c++ {
		full := true
		for r := 0; r < b.Size; r++ {
			if b.Cells[r][c] == None {
				full = false
				break
			}
		}
		if full {
			cols = append(cols, c)
		}
	}
	return rows, cols
}

// ClearLines empties every cell belonging to any of the given rows or columns
// in one step. Intersections are cleared once; the union is what matters.
func (b *Board) ClearLines(rows, cols []int) {
	for _, r := range rows {
		for c := 0; c < b.Size; c++ {
			b.Cells[r][c] = None
		}
	}
	for _, c := range cols {
		for r := 0; r < b.Size; r++ {
			b.Cells[r][c] = None
		}
	}
}

func (b *Board) IsEmpty() bool {
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.Cells[r][c] != None {
				return false
			}
		}
	}
	return true
}

// Fits reports whether m can be placed anywhere on the board.
func (b *Board) Fits(m shapes.Matrix) bool {
	for r := 0; r <= b.Size-m.Rows(); r++ {
		for c := 0; c <= b.Size-m.Cols(); c++ {
			if b.CanPlace(m, r, c) {
				return true
			}
		}
	}
	return false
}

// FillRatio is the fraction of occupied cells, used by dealing heuristics.
func (b *Board) FillRatio() float64 {
	filled := 0
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.Cells[r][c] != None {
				filled++
			}
		}
	}
	return float64(filled) / float64(b.Size*b.Size)
}
