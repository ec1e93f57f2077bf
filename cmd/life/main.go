//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"lifestep/internal/app"
	"lifestep/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lifeCfg, err := cfg.Life()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if lifeCfg.Seed == 0 {
		lifeCfg.Seed = time.Now().UnixNano()
	}

	world, err := life.New(lifeCfg)
	if err != nil {
		log.Fatalf("world: %v", err)
	}

	game := app.New(world, cfg.Scale, lifeCfg.Seed)

	ebiten.SetWindowTitle("lifestep")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(world.Width()*cfg.Scale, world.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
