package system

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"io/fs"
	"strconv"
	"strings"

	// Registered decoders for texture files referenced by the manifest.
	_ "image/png"

	"github.com/adrior11/raycasting/internal/domain/entity"
)

// LoadTiles reads a line-oriented tile manifest and builds the registry.
// Each line is "<hex id> <texture path> <type label>"; blank lines and
// lines starting with '#' are skipped. Any unreadable or undecodable
// texture is fatal: a partially populated registry is unsafe to render
// with, so there is no partial-success path.
func LoadTiles(fsys fs.FS, manifestPath string) (*entity.Registry, error) {
	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile manifest %s: %w", manifestPath, err)
	}

	reg := entity.NewRegistry()

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("tile manifest %s:%d: want \"<id> <path> <type>\", got %q", manifestPath, lineNo, line)
		}

		id, err := strconv.ParseUint(fields[0], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("tile manifest %s:%d: bad tile id %q: %w", manifestPath, lineNo, fields[0], err)
		}
		if id == 0 {
			return nil, fmt.Errorf("tile manifest %s:%d: tile id 00 is reserved for empty map cells", manifestPath, lineNo)
		}

		tile, err := loadTexture(fsys, fields[1])
		if err != nil {
			return nil, fmt.Errorf("tile %#02x: %w", id, err)
		}
		tile.ID = int(id)
		tile.Kind = entity.ParseKind(fields[2])

		if err := reg.Add(tile); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tile manifest %s: %w", manifestPath, err)
	}

	if reg.Len() == 0 {
		return nil, fmt.Errorf("tile manifest %s declares no tiles", manifestPath)
	}
	return reg, nil
}

// loadTexture decodes a texture file and copies it into an owned packed
// ARGB buffer.
func loadTexture(fsys fs.FS, path string) (*entity.Tile, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = uint32(a>>8)<<24 | uint32(r>>8)<<16 | uint32(g>>8)<<8 | uint32(b>>8)
		}
	}

	return &entity.Tile{Width: w, Height: h, Pixels: pixels}, nil
}
