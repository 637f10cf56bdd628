package tetris

import "math/rand"

// RandomSource supplies the unsigned integers used to pick the next piece.
// *rand.Rand satisfies it; tests inject fixed sequences.
type RandomSource interface {
	Uint64() uint64
}

// NewRandomSource returns a seeded pseudo-random source.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// drawPieceType picks a piece type uniformly from the catalog.
func drawPieceType(r RandomSource) PieceType {
	return AllPieceTypes[r.Uint64()%pieceTypeCount]
}
