package system

import (
	"bytes"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/adrior11/raycasting/internal/domain/entity"
)

// LoadMap reads a map file: a "<width> <height>" header followed by
// width*height whitespace-separated hex tile ids, row-major. Ids that are
// not registered resolve to no tile and render as empty space; that is
// not an error. Tokens beyond width*height are ignored.
func LoadMap(fsys fs.FS, path string, reg *entity.Registry) (*entity.Map, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", path, err)
	}

	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return nil, fmt.Errorf("map %s: missing dimension header", path)
	}

	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("map %s: bad width %q: %w", path, fields[0], err)
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("map %s: bad height %q: %w", path, fields[1], err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("map %s: invalid dimensions %dx%d", path, width, height)
	}

	tokens := fields[2:]
	if len(tokens) < width*height {
		return nil, fmt.Errorf("map %s: want %d cells, got %d", path, width*height, len(tokens))
	}

	cells := make([]int16, width*height)
	for i, tok := range tokens[:width*height] {
		id, err := strconv.ParseUint(tok, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("map %s: bad tile id %q at cell (%d, %d): %w", path, tok, i%width, i/width, err)
		}
		cells[i] = reg.Handle(int(id))
	}

	return entity.NewMap(width, height, cells, reg), nil
}

// EncodeMap writes a map back out in the map file format. Cells that
// resolve to no tile encode as id 00, which LoadTiles keeps unregistered
// by rejecting it in manifests; reloading the output resolves every cell
// identically.
func EncodeMap(m *entity.Map) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d %d\n", m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if x > 0 {
				buf.WriteByte(' ')
			}
			if tile, ok := m.Get(x, y); ok {
				fmt.Fprintf(&buf, "%02X", tile.ID)
			} else {
				buf.WriteString("00")
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
