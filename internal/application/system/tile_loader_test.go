package system

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrior11/raycasting/internal/domain/entity"
)

// encodePNG builds a w x h PNG filled with fill, with pixel (1, 1) set to
// mark when the image is at least 2x2.
func encodePNG(t *testing.T, w, h int, fill, mark color.RGBA) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	if w > 1 && h > 1 {
		img.SetRGBA(1, 1, mark)
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func assetFS(t *testing.T, manifest string) fstest.MapFS {
	t.Helper()

	red := color.RGBA{R: 0xAA, A: 0xFF}
	blue := color.RGBA{B: 0xBB, A: 0xFF}
	return fstest.MapFS{
		"tiles.txt":            &fstest.MapFile{Data: []byte(manifest)},
		"textures/wall.png":    &fstest.MapFile{Data: encodePNG(t, 4, 4, red, blue)},
		"textures/floor.png":   &fstest.MapFile{Data: encodePNG(t, 2, 2, red, blue)},
		"textures/odd.png":     &fstest.MapFile{Data: encodePNG(t, 3, 4, red, blue)},
		"textures/corrupt.png": &fstest.MapFile{Data: []byte("not a png")},
	}
}

func TestLoadTiles(t *testing.T) {
	manifest := `# id  path  type
01 textures/wall.png wall
40 textures/floor.png floor

41 textures/floor.png banner
`
	reg, err := LoadTiles(assetFS(t, manifest), "tiles.txt")
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	wall, ok := reg.ByID(0x01)
	require.True(t, ok)
	assert.Equal(t, entity.KindWall, wall.Kind)
	assert.Equal(t, 4, wall.Width)
	assert.Equal(t, 4, wall.Height)
	assert.Equal(t, uint32(0xFFAA0000), wall.Texel(0, 0))
	assert.Equal(t, uint32(0xFF0000BB), wall.Texel(1, 1))

	floor, ok := reg.ByID(0x40)
	require.True(t, ok)
	assert.Equal(t, entity.KindFloor, floor.Kind)

	decor, ok := reg.ByID(0x41)
	require.True(t, ok)
	assert.Equal(t, entity.KindDecor, decor.Kind, "unrecognized labels map to decor")
}

func TestLoadTiles_Errors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"missing texture", "01 textures/missing.png wall\n"},
		{"undecodable texture", "01 textures/corrupt.png wall\n"},
		{"non power-of-two texture", "01 textures/odd.png wall\n"},
		{"bad id", "zz textures/wall.png wall\n"},
		{"reserved id 00", "00 textures/wall.png wall\n"},
		{"short line", "01 textures/wall.png\n"},
		{"long line", "01 textures/wall.png wall extra\n"},
		{"empty manifest", ""},
		{"only comments", "# nothing here\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTiles(assetFS(t, tt.manifest), "tiles.txt")
			assert.Error(t, err)
		})
	}
}

func TestLoadTiles_MissingManifest(t *testing.T) {
	_, err := LoadTiles(fstest.MapFS{}, "tiles.txt")
	assert.Error(t, err)
}

// One bad texture aborts the whole load even when earlier entries were
// fine; a partially populated registry must never come back.
func TestLoadTiles_NoPartialRegistry(t *testing.T) {
	manifest := "01 textures/wall.png wall\n02 textures/missing.png wall\n"

	reg, err := LoadTiles(assetFS(t, manifest), "tiles.txt")
	assert.Error(t, err)
	assert.Nil(t, reg)
}
