//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"langton/internal/app"
	"langton/internal/sims/ant"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engine, err := ant.NewWithConfig(cfg.EngineConfig())
	if err != nil {
		log.Fatalf("configure engine: %v", err)
	}

	game := app.New(engine, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("langton — " + engine.Rules().String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
