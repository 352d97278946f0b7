package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	sceneName := flag.String("scene", "demo.yaml", "scene file in scene/ (embedded or on disk)")
	watch := flag.Bool("watch", true, "reload when scene files change")
	paused := flag.Bool("paused", false, "start paused")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("rigid sandbox")

	game := NewGame(*sceneName, *watch, *paused)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
