//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridclip/internal/app"
	"gridclip/internal/worldgen"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gen, ok := worldgen.Generators()[cfg.World]
	if !ok {
		log.Fatalf("unknown world %q", cfg.World)
	}

	game := app.New(cfg, gen)

	ebiten.SetWindowTitle("gridclip — " + cfg.World)
	ebiten.SetTPS(cfg.TPS)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
