package model

// Board dimensions in cells.
const (
	Width  = 10
	Height = 20
)

// Board is the fixed-size well that pieces fall into. Cells hold the kind of
// the piece that locked there, or KindNone when empty. Everything outside the
// grid counts as solid for collision purposes.
type Board struct {
	cells [Height][Width]Kind
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// inside reports whether (x, y) is within the grid
func inside(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Get returns the kind occupying (x, y), or KindNone if the cell is empty or
// out of range. Out-of-range reads are deliberately safe so shape code can
// probe without bounds checks.
func (b *Board) Get(x, y int) Kind {
	if !inside(x, y) {
		return KindNone
	}
	return b.cells[y][x]
}

// Set writes a kind at (x, y). Out-of-range writes are a no-op.
func (b *Board) Set(x, y int, k Kind) {
	if inside(x, y) {
		b.cells[y][x] = k
	}
}

// LockPiece permanently writes the piece's four cells into the grid
func (b *Board) LockPiece(p Piece) {
	for _, o := range p.Blocks() {
		b.Set(p.X+o.DX, p.Y+o.DY, p.Kind)
	}
}

// ClearLines removes every full row and shifts the rows above it down,
// returning the number of rows cleared. Rows are compacted in a single
// bottom-up pass rather than shifted one clear at a time.
func (b *Board) ClearLines() int {
	writeY := Height - 1
	cleared := 0
	for y := Height - 1; y >= 0; y-- {
		if b.rowFull(y) {
			cleared++
			continue
		}
		if writeY != y {
			b.cells[writeY] = b.cells[y]
		}
		writeY--
	}
	for y := 0; y <= writeY; y++ {
		b.cells[y] = [Width]Kind{}
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if b.cells[y][x] == KindNone {
			return false
		}
	}
	return true
}

// Collides reports whether any of the piece's cells falls outside the grid or
// on an occupied cell. This is the single legality check behind every move,
// rotation and spawn.
func (b *Board) Collides(p Piece) bool {
	for _, o := range p.Blocks() {
		x, y := p.X+o.DX, p.Y+o.DY
		if !inside(x, y) {
			return true
		}
		if b.cells[y][x] != KindNone {
			return true
		}
	}
	return false
}
