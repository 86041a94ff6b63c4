//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wirespin/internal/app"
	"wirespin/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := core.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := app.New(cfg)

	ebiten.SetWindowTitle("wirespin")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Size, cfg.Size)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
