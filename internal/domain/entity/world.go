package entity

// Map is a grid of registry handles, immutable once loaded. Cells reference
// tiles by index into the registry, so the referenced tiles must outlive
// the map.
type Map struct {
	Width  int
	Height int
	cells  []int16
	reg    *Registry
}

// NewMap builds a map over the given cell handles. The slice is row-major
// and must hold width*height entries.
func NewMap(width, height int, cells []int16, reg *Registry) *Map {
	return &Map{
		Width:  width,
		Height: height,
		cells:  cells,
		reg:    reg,
	}
}

// Get returns the tile at (x, y). Out-of-range coordinates and unresolved
// cells yield no tile, never a panic.
func (m *Map) Get(x, y int) (*Tile, bool) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return nil, false
	}
	t := m.reg.At(m.cells[y*m.Width+x])
	return t, t != nil
}

// InBounds reports whether (x, y) addresses a cell of the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsSolid reports whether (x, y) blocks movement: every out-of-bounds
// coordinate is solid, as is any wall tile. Door tiles render as walls but
// stay open to movement.
func (m *Map) IsSolid(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	t := m.reg.At(m.cells[y*m.Width+x])
	return t != nil && t.Kind == KindWall
}
