package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/adrior11/raycasting/internal/application/game"
	"github.com/adrior11/raycasting/internal/application/replay"
	"github.com/adrior11/raycasting/internal/application/scene/playing"
	"github.com/adrior11/raycasting/internal/application/system"
	"github.com/adrior11/raycasting/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	assetsFlag := flag.String("assets", "", "Load configs and assets from a directory instead of the embedded copies")
	flag.Parse()

	var configFS, assetFS fs.FS
	if *assetsFlag != "" {
		root := os.DirFS(*assetsFlag)
		configFS = mustSub(root, "configs")
		assetFS = mustSub(root, "assets")
	} else {
		configFS = mustSub(gameFS, "configs")
		assetFS = mustSub(gameFS, "assets")
	}

	// Load settings
	loader := config.NewFSLoader(configFS, "configs")
	cfg, err := loader.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load tiles and map
	reg, err := system.LoadTiles(assetFS, cfg.Assets.TileManifest)
	if err != nil {
		log.Fatalf("Failed to load tiles: %v", err)
	}
	world, err := system.LoadMap(assetFS, cfg.Assets.MapFile, reg)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	// Load replay if requested
	var replayer *replay.Replayer
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		log.Printf("Replaying %s (%d frames)", *replayFlag, replayer.TotalFrames())
	}

	// Create the playing scene
	scene, err := playing.New(cfg, world, reg, *recordFlag, replayer)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Raycasting")
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", dir, err)
	}
	return sub
}
