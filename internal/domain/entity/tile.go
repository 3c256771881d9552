package entity

// TileKind classifies how a tile participates in rendering and collision
type TileKind int

const (
	KindEmpty TileKind = iota
	KindFloor
	KindWall
	KindDoor
	KindDecor
)

// String returns the string representation of the tile kind
func (k TileKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindFloor:
		return "floor"
	case KindWall:
		return "wall"
	case KindDoor:
		return "door"
	case KindDecor:
		return "decor"
	default:
		return "unknown"
	}
}

// ParseKind maps a manifest type label to a TileKind.
// Unrecognized labels classify as decor.
func ParseKind(label string) TileKind {
	switch label {
	case "floor":
		return KindFloor
	case "wall":
		return KindWall
	case "door":
		return KindDoor
	default:
		return KindDecor
	}
}

// Tile is a decoded texture plus its semantic kind. Pixels are packed
// 0xAARRGGBB values, row-major. Width and Height must be powers of two
// so texel lookups wrap with a bit mask instead of a modulo.
type Tile struct {
	ID     int
	Width  int
	Height int
	Pixels []uint32
	Kind   TileKind
}

// Texel returns the packed color at (tx, ty), wrapping both coordinates
// with the power-of-two mask.
func (t *Tile) Texel(tx, ty int) uint32 {
	tx &= t.Width - 1
	ty &= t.Height - 1
	return t.Pixels[ty*t.Width+tx]
}
