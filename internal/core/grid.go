package core

// ByteGrid stores rows of byte-sized cell values in row-major order. Rows are
// appended top to bottom; once the grid is full the oldest row scrolls off the
// top.
type ByteGrid struct {
	W, H int
	data []uint8
	rows int
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Rows returns how many rows have been filled.
func (g *ByteGrid) Rows() int { return g.rows }

// Row returns the slice backing row y.
func (g *ByteGrid) Row(y int) []uint8 { return g.data[y*g.W : (y+1)*g.W] }

// Push copies row into the next free line, scrolling when the grid is full.
// Values beyond W are ignored and missing values are zero.
func (g *ByteGrid) Push(row []uint8) {
	if g.rows == g.H {
		copy(g.data, g.data[g.W:])
		g.rows--
	}
	dst := g.Row(g.rows)
	n := copy(dst, row)
	clear(dst[n:])
	g.rows++
}

// Clear fills the grid with zeros and forgets every row.
func (g *ByteGrid) Clear() {
	clear(g.data)
	g.rows = 0
}

// Wrap maps any index onto the ring [0, n). n must be positive.
func Wrap(x, n int) int {
	return (x%n + n) % n
}
