//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifepaint/internal/app"
	"lifepaint/internal/config"
	"lifepaint/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.Default()
	cfgPath := flag.String("config", "", "optional HCL config file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *cfgPath != "" {
		if err := cfg.LoadFile(*cfgPath); err != nil {
			log.Fatal(err)
		}
		// Flags given on the command line win over the file.
		if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := cfg.Logger(os.Stderr)
	session := sim.New(cfg, logger)
	game := app.New(session, logger)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.FrameTPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
