package tetris

// Cell is a board cell: either empty or filled with the identity of the piece
// that was locked there.
type Cell uint8

// Empty is the zero value of a board cell.
const Empty Cell = 0

// Filled returns a cell filled with the given piece identity.
func Filled(t PieceType) Cell {
	return Cell(t) + 1
}

// IsFilled reports whether the cell is occupied.
func (c Cell) IsFilled() bool {
	return c != Empty
}

// Piece returns the identity of the piece that filled the cell.
// The result is meaningless for an empty cell.
func (c Cell) Piece() PieceType {
	return PieceType(c - 1)
}

// Board is a fixed width x height grid addressed as rows[y][x], with y
// growing downwards. Row count and width never change after creation.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty board. Dimensions below 1 are raised to 1.
func NewBoard(width, height int) *Board {
	width = max(width, 1)
	height = max(height, 1)

	cells := make([]Cell, width*height)
	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = cells[y*width : (y+1)*width : (y+1)*width]
	}
	return &Board{width: width, height: height, rows: rows}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) addresses a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). Out-of-bounds reads return Empty.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.rows[y][x]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.rows[y][x] = c
}

// Fits reports whether the piece can occupy its current position: every
// occupied cell lies within [0, width) horizontally and above the floor, and
// every cell at y >= 0 is empty. Cells above the top edge are allowed.
func (b *Board) Fits(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.width || c.Y >= b.height {
			return false
		}
		if c.Y >= 0 && b.rows[c.Y][c.X].IsFilled() {
			return false
		}
	}
	return true
}

// Lock writes the piece's cells into the board. Cells above the top edge are
// dropped.
func (b *Board) Lock(p Piece) {
	fill := Filled(p.Type)
	for _, c := range p.Cells() {
		b.Set(c.X, c.Y, fill)
	}
}

// RowFull reports whether every cell of row y is filled.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.rows[y] {
		if !c.IsFilled() {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, bottom first.
func (b *Board) FullRows() []int {
	var full []int
	for y := b.height - 1; y >= 0; y-- {
		if b.RowFull(y) {
			full = append(full, y)
		}
	}
	return full
}

// ClearLines removes every full row, shifts the rows above it down and
// inserts empty rows at the top. Returns the number of rows removed.
//
// Rows are scanned bottom to top. After a removal the same index is examined
// again, since it now holds the row that was above it.
func (b *Board) ClearLines() int {
	cleared := 0
	y := b.height - 1
	for scanned := 0; scanned < b.height; scanned++ {
		if !b.RowFull(y) {
			y--
			continue
		}
		b.removeRow(y)
		cleared++
	}
	return cleared
}

// removeRow drops row y and recycles its storage as the new empty top row.
func (b *Board) removeRow(y int) {
	removed := b.rows[y]
	copy(b.rows[1:y+1], b.rows[:y])
	clear(removed)
	b.rows[0] = removed
}

// Rows returns a deep copy of the grid.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.height)
	for y, row := range b.rows {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := NewBoard(b.width, b.height)
	for y, row := range b.rows {
		copy(c.rows[y], row)
	}
	return c
}

// StackHeight returns the height of the tallest column, counting from the floor.
func (b *Board) StackHeight() int {
	for y, row := range b.rows {
		for _, c := range row {
			if c.IsFilled() {
				return b.height - y
			}
		}
	}
	return 0
}
