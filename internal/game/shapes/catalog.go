package shapes

// Matrix is the bounding-box cell mask of a shape, row-major. The box need
// not be square; false cells impose no constraint when placing.
type Matrix [][]bool

func (m Matrix) Rows() int { return len(m) }

func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Area counts the filled cells of the mask.
func (m Matrix) Area() int {
	n := 0
	for _, row := range m {
		for _, f := range row {
			if f {
				n++
			}
		}
	}
	return n
}

type Category string

const (
	CategoryDot    Category = "dot"
	CategoryLine   Category = "line"
	CategorySquare Category = "square"
	CategoryCorner Category = "corner"
	CategoryTee    Category = "tee"
	CategoryZig    Category = "zig"
)

// Shape is one immutable catalog entry. Rotations are separate entries,
// never computed at runtime.
type Shape struct {
	ID       string   `json:"id"`
	Matrix   Matrix   `json:"matrix"`
	Category Category `json:"category"`
	// Weight biases weighted dealing; higher means dealt more often.
	Weight int `json:"-"`
}

// parse turns "X" / "." rows into a Matrix. It panics on ragged input since
// the catalog is static and loaded once at process start.
func parse(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			panic("shapes: ragged matrix for " + row)
		}
		m[i] = make([]bool, len(row))
		for j, ch := range row {
			m[i][j] = ch == 'X'
		}
	}
	return m
}

// Catalog is the full static shape registry.
var Catalog = []Shape{
	{ID: "dot1", Matrix: parse("X"), Category: CategoryDot, Weight: 5},

	{ID: "line2h", Matrix: parse("XX"), Category: CategoryLine, Weight: 5},
	{ID: "line2v", Matrix: parse("X", "X"), Category: CategoryLine, Weight: 5},
	{ID: "line3h", Matrix: parse("XXX"), Category: CategoryLine, Weight: 4},
	{ID: "line3v", Matrix: parse("X", "X", "X"), Category: CategoryLine, Weight: 4},
	{ID: "line4h", Matrix: parse("XXXX"), Category: CategoryLine, Weight: 3},
	{ID: "line4v", Matrix: parse("X", "X", "X", "X"), Category: CategoryLine, Weight: 3},
	{ID: "line5h", Matrix: parse("XXXXX"), Category: CategoryLine, Weight: 2},
	{ID: "line5v", Matrix: parse("X", "X", "X", "X", "X"), Category: CategoryLine, Weight: 2},

	{ID: "sq2", Matrix: parse("XX", "XX"), Category: CategorySquare, Weight: 4},
	{ID: "sq3", Matrix: parse("XXX", "XXX", "XXX"), Category: CategorySquare, Weight: 1},
	{ID: "rect2x3", Matrix: parse("XXX", "XXX"), Category: CategorySquare, Weight: 2},
	{ID: "rect3x2", Matrix: parse("XX", "XX", "XX"), Category: CategorySquare, Weight: 2},

	{ID: "corner2a", Matrix: parse("X.", "XX"), Category: CategoryCorner, Weight: 4},
	{ID: "corner2b", Matrix: parse(".X", "XX"), Category: CategoryCorner, Weight: 4},
	{ID: "corner2c", Matrix: parse("XX", "X."), Category: CategoryCorner, Weight: 4},
	{ID: "corner2d", Matrix: parse("XX", ".X"), Category: CategoryCorner, Weight: 4},
	{ID: "corner3a", Matrix: parse("X..", "X..", "XXX"), Category: CategoryCorner, Weight: 2},
	{ID: "corner3b", Matrix: parse("..X", "..X", "XXX"), Category: CategoryCorner, Weight: 2},
	{ID: "corner3c", Matrix: parse("XXX", "X..", "X.."), Category: CategoryCorner, Weight: 2},
	{ID: "corner3d", Matrix: parse("XXX", "..X", "..X"), Category: CategoryCorner, Weight: 2},

	{ID: "ell4a", Matrix: parse("X.", "X.", "XX"), Category: CategoryCorner, Weight: 3},
	{ID: "ell4b", Matrix: parse(".X", ".X", "XX"), Category: CategoryCorner, Weight: 3},
	{ID: "ell4c", Matrix: parse("XXX", "X.."), Category: CategoryCorner, Weight: 3},
	{ID: "ell4d", Matrix: parse("XXX", "..X"), Category: CategoryCorner, Weight: 3},

	{ID: "tee4a", Matrix: parse("XXX", ".X."), Category: CategoryTee, Weight: 3},
	{ID: "tee4b", Matrix: parse(".X.", "XXX"), Category: CategoryTee, Weight: 3},
	{ID: "tee4c", Matrix: parse("X.", "XX", "X."), Category: CategoryTee, Weight: 3},
	{ID: "tee4d", Matrix: parse(".X", "XX", ".X"), Category: CategoryTee, Weight: 3},

	{ID: "zig4a", Matrix: parse(".XX", "XX."), Category: CategoryZig, Weight: 3},
	{ID: "zig4b", Matrix: parse("XX.", ".XX"), Category: CategoryZig, Weight: 3},
	{ID: "zig4c", Matrix: parse("X.", "XX", ".X"), Category: CategoryZig, Weight: 3},
	{ID: "zig4d", Matrix: parse(".X", "XX", "X."), Category: CategoryZig, Weight: 3},
}

var byID = func() map[string]*Shape {
	m := make(map[string]*Shape, len(Catalog))
	for i := range Catalog {
		if _, dup := m[Catalog[i].ID]; dup {
			panic("shapes: duplicate catalog id " + Catalog[i].ID)
		}
		m[Catalog[i].ID] = &Catalog[i]
	}
	return m
}()

// ByID looks a shape up by its catalog id.
func ByID(id string) (*Shape, bool) {
	s, ok := byID[id]
	return s, ok
}
