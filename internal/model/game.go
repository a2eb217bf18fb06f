package model

// Game is the root of all session state: the board, the falling piece, the
// upcoming kind, and the score counters. A session has exactly one Game and
// it is only ever mutated by the run loop.
type Game struct {
	Board *Board
	Cur   Piece
	Next  Kind

	Score uint64
	Level int // starts at 1, never decreases
	Lines int // cumulative cleared rows
	Over  bool
}
