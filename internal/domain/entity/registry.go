package entity

import "fmt"

// MaxTileID is the largest tile id addressable through the direct-index
// lookup table. Manifests may declare larger ids; those tiles are kept in
// the registry but can never be resolved by a map cell.
const MaxTileID = 0xFF

// NoTile is the registry handle for a cell that resolves to no tile.
const NoTile = int16(-1)

// Registry owns every loaded tile for the lifetime of a level and resolves
// ids in O(1) through a direct-indexed table.
type Registry struct {
	tiles []*Tile
	byID  [MaxTileID + 1]int16
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.byID {
		r.byID[i] = NoTile
	}
	return r
}

// Add takes ownership of a tile and indexes it by id. Texture dimensions
// are validated here so the masking-based texel wrap is sound for every
// registered tile.
func (r *Registry) Add(t *Tile) error {
	if t.Width <= 0 || t.Height <= 0 || t.Width&(t.Width-1) != 0 || t.Height&(t.Height-1) != 0 {
		return fmt.Errorf("tile %#02x: texture size %dx%d is not a power of two", t.ID, t.Width, t.Height)
	}
	if len(t.Pixels) != t.Width*t.Height {
		return fmt.Errorf("tile %#02x: pixel buffer has %d entries, want %d", t.ID, len(t.Pixels), t.Width*t.Height)
	}
	if len(r.tiles) > int(^uint16(0)>>1) {
		return fmt.Errorf("tile %#02x: registry is full", t.ID)
	}
	idx := int16(len(r.tiles))
	r.tiles = append(r.tiles, t)
	if t.ID >= 0 && t.ID <= MaxTileID {
		r.byID[t.ID] = idx
	}
	return nil
}

// ByID returns the tile registered under id, if any. Ids outside the
// representable range resolve to no tile.
func (r *Registry) ByID(id int) (*Tile, bool) {
	h := r.Handle(id)
	if h == NoTile {
		return nil, false
	}
	return r.tiles[h], true
}

// Handle returns the internal index for id, or NoTile. Handles are what
// map cells store, keeping cell references non-owning and the no-tile
// case an explicit sentinel.
func (r *Registry) Handle(id int) int16 {
	if id < 0 || id > MaxTileID {
		return NoTile
	}
	return r.byID[id]
}

// At resolves a handle previously returned by Handle. NoTile resolves to nil.
func (r *Registry) At(h int16) *Tile {
	if h == NoTile {
		return nil
	}
	return r.tiles[h]
}

// Len returns the number of registered tiles.
func (r *Registry) Len() int {
	return len(r.tiles)
}

// Tiles returns the owned tile collection for enumeration.
func (r *Registry) Tiles() []*Tile {
	return r.tiles
}
