package model

// Kind identifies one of the seven piece shapes
type Kind int

const (
	KindNone Kind = iota // empty cell
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every spawnable kind, for uniform random draws
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "none"
	}
}

// Offset is a cell position relative to a piece's anchor
type Offset struct {
	DX, DY int
}

// shapes maps (kind, rotation) to the four cells a piece occupies. The tables
// are fixed lookup data: rotation axes differ per kind (the O piece is the
// same in all four states, the I piece pivots around its second cell).
var shapes = [...][4][4]Offset{
	KindI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	KindO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Pieces spawn with their anchor at this position.
const (
	SpawnX = 3
	SpawnY = 0
)

// Piece is the currently falling tetromino: a kind, a rotation state (0-3)
// and an anchor position in board coordinates. Pieces have value semantics;
// a failed transform leaves the receiver untouched.
type Piece struct {
	Kind Kind
	Rot  int
	X, Y int
}

// NewPiece creates a piece of the given kind at the spawn position
func NewPiece(kind Kind) Piece {
	return Piece{Kind: kind, X: SpawnX, Y: SpawnY}
}

// Blocks returns the four cell offsets for the piece's current rotation
func (p Piece) Blocks() [4]Offset {
	return shapes[p.Kind][p.Rot]
}

// TryMove shifts the piece by (dx, dy) if the destination is legal. It
// reports whether the move was applied.
func (p *Piece) TryMove(b *Board, dx, dy int) bool {
	moved := *p
	moved.X += dx
	moved.Y += dy
	if b.Collides(moved) {
		return false
	}
	*p = moved
	return true
}

// kicks is the horizontal correction order tried during rotation: no shift
// first, then single-column shifts, then double, left before right.
var kicks = [...]int{0, -1, 1, -2, 2}

// TryRotate turns the piece one rotation state clockwise or counter-clockwise,
// kicking it sideways if the direct rotation collides. The first legal kick
// wins; if none fits the rotation fails and the piece is unchanged. No
// vertical kicks are attempted.
func (p *Piece) TryRotate(b *Board, clockwise bool) bool {
	rotated := *p
	if clockwise {
		rotated.Rot = (rotated.Rot + 1) % 4
	} else {
		rotated.Rot = (rotated.Rot + 3) % 4
	}
	for _, kick := range kicks {
		candidate := rotated
		candidate.X += kick
		if !b.Collides(candidate) {
			*p = candidate
			return true
		}
	}
	return false
}
