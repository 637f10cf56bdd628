// Package tetris implements the falling-block puzzle engine: the piece
// catalog, the board with placement validation and line clearing, scoring
// and leveling, and the game-loop controller that ties them together.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// PieceType identifies one of the seven tetrominoes.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	pieceTypeCount = 7
)

// AllPieceTypes lists every piece type in catalog order.
var AllPieceTypes = [pieceTypeCount]PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

// Shape is a rectangular occupancy matrix indexed as shape[dy][dx].
// The anchor of a piece is the top-left corner of its shape.
type Shape [][]bool

// Width returns the number of columns in the shape.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows in the shape.
func (s Shape) Height() int {
	return len(s)
}

// shape builds a Shape from rows of '#' (filled) and '.' (empty).
func shape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '#'
		}
	}
	return s
}

// catalog holds the rotation states of each piece, in clockwise order.
var catalog = [pieceTypeCount][]Shape{
	PieceI: {
		shape("####"),
		shape("#", "#", "#", "#"),
	},
	PieceO: {
		shape("##", "##"),
	},
	PieceT: {
		shape(".#.", "###"),
		shape("#.", "##", "#."),
		shape("###", ".#."),
		shape(".#", "##", ".#"),
	},
	PieceS: {
		shape(".##", "##."),
		shape("#.", "##", ".#"),
	},
	PieceZ: {
		shape("##.", ".##"),
		shape(".#", "##", "#."),
	},
	PieceJ: {
		shape("#..", "###"),
		shape("##", "#.", "#."),
		shape("###", "..#"),
		shape(".#", ".#", "##"),
	},
	PieceL: {
		shape("..#", "###"),
		shape("#.", "#.", "##"),
		shape("###", "#.."),
		shape("##", ".#", ".#"),
	},
}

var pieceNames = [pieceTypeCount]string{"I", "O", "T", "S", "Z", "J", "L"}

var pieceColors = [pieceTypeCount]core.Color{
	PieceI: core.ColorCyan,
	PieceO: core.ColorYellow,
	PieceT: core.ColorMagenta,
	PieceS: core.ColorGreen,
	PieceZ: core.ColorRed,
	PieceJ: core.ColorBlue,
	PieceL: core.ColorOrange,
}

// Valid reports whether t is one of the seven catalog types.
func (t PieceType) Valid() bool {
	return t < pieceTypeCount
}

// String returns the conventional letter of the piece.
func (t PieceType) String() string {
	if !t.Valid() {
		return "?"
	}
	return pieceNames[t]
}

// Color returns the display color of the piece.
func (t PieceType) Color() core.Color {
	if !t.Valid() {
		return core.ColorDefault
	}
	return pieceColors[t]
}

// Shapes returns the ordered rotation states of the piece.
// The returned slice is shared and must not be modified.
func (t PieceType) Shapes() []Shape {
	return catalog[t]
}

// RotationCount returns the number of distinct rotation states.
func (t PieceType) RotationCount() int {
	return len(catalog[t])
}

// ShapeAt returns the shape for a rotation index, taken modulo the rotation count.
func (t PieceType) ShapeAt(rotation int) Shape {
	shapes := catalog[t]
	n := len(shapes)
	return shapes[((rotation%n)+n)%n]
}

// Piece is an active tetromino instance positioned on the board.
type Piece struct {
	Type     PieceType
	X, Y     int // Anchor: board position of the shape's top-left corner
	Rotation int // Index into Type.Shapes()
}

// SpawnPiece returns a piece of type t at its default spawn anchor for a board
// of the given width.
func SpawnPiece(t PieceType, boardWidth int) Piece {
	return Piece{
		Type:     t,
		X:        boardWidth/2 - 1,
		Y:        0,
		Rotation: 0,
	}
}

// Shape returns the piece's current rotation state.
func (p Piece) Shape() Shape {
	return p.Type.ShapeAt(p.Rotation)
}

// Cells returns the absolute board coordinates of the four occupied cells.
func (p Piece) Cells() [4]core.Point {
	var cells [4]core.Point
	anchor := core.Point{X: p.X, Y: p.Y}
	n := 0
	for dy, row := range p.Shape() {
		for dx, filled := range row {
			if filled && n < len(cells) {
				cells[n] = anchor.Add(core.Point{X: dx, Y: dy})
				n++
			}
		}
	}
	return cells
}

// Moved returns a copy of the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece advanced by one rotation state.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % p.Type.RotationCount()
	return p
}
