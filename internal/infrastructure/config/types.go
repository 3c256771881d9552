package config

import (
	"fmt"
	"strconv"
	"strings"
)

// SettingsConfig is the root config for settings.json
type SettingsConfig struct {
	Display DisplayConfig `json:"display"`
	Camera  CameraConfig  `json:"camera"`
	Render  RenderConfig  `json:"render"`
	Assets  AssetsConfig  `json:"assets"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type CameraConfig struct {
	FOVFactor     float64 `json:"fovFactor"`     // tan(half horizontal FOV)
	Radius        float64 `json:"radius"`        // collision radius in tile units
	MoveSpeed     float64 `json:"moveSpeed"`     // tile units per second
	RotationSpeed float64 `json:"rotationSpeed"` // radians per second
	SpawnX        float64 `json:"spawnX"`
	SpawnY        float64 `json:"spawnY"`
	SpawnDirX     float64 `json:"spawnDirX"`
	SpawnDirY     float64 `json:"spawnDirY"`
}

type RenderConfig struct {
	MaxSteps      int    `json:"maxSteps"`      // DDA step ceiling per ray
	WallDimFactor uint32 `json:"wallDimFactor"` // 0..256 multiplier for Y-side walls
	SkyColor      string `json:"skyColor"`
	GroundColor   string `json:"groundColor"`
	CeilingTileID int    `json:"ceilingTileId"`
}

type AssetsConfig struct {
	TileManifest string `json:"tileManifest"`
	MapFile      string `json:"mapFile"`
}

// Validate checks the settings for values the engine cannot start with.
func (c *SettingsConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display: invalid screen size %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("display: invalid framerate %d", c.Display.Framerate)
	}
	if c.Camera.Radius <= 0 {
		return fmt.Errorf("camera: invalid collision radius %g", c.Camera.Radius)
	}
	if c.Camera.FOVFactor <= 0 {
		return fmt.Errorf("camera: invalid fov factor %g", c.Camera.FOVFactor)
	}
	if c.Render.MaxSteps <= 0 {
		return fmt.Errorf("render: invalid DDA step ceiling %d", c.Render.MaxSteps)
	}
	if c.Render.WallDimFactor > 256 {
		return fmt.Errorf("render: wall dim factor %d out of range 0..256", c.Render.WallDimFactor)
	}
	if c.Render.CeilingTileID < 0 {
		return fmt.Errorf("render: invalid ceiling tile id %d", c.Render.CeilingTileID)
	}
	if _, err := ParseColor(c.Render.SkyColor); err != nil {
		return fmt.Errorf("render: sky color: %w", err)
	}
	if _, err := ParseColor(c.Render.GroundColor); err != nil {
		return fmt.Errorf("render: ground color: %w", err)
	}
	if c.Assets.TileManifest == "" || c.Assets.MapFile == "" {
		return fmt.Errorf("assets: tile manifest and map file paths are required")
	}
	return nil
}

// ParseColor parses a "#RRGGBB" color string into packed opaque 0xFFRRGGBB.
func ParseColor(s string) (uint32, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return 0, fmt.Errorf("color %q must have the form #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q must have the form #RRGGBB", s)
	}
	return 0xFF000000 | uint32(v), nil
}
