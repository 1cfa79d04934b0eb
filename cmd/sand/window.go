//go:build ebiten

package main

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"sandfall/internal/app"
	"sandfall/internal/config"
	"sandfall/internal/sand"
	"sandfall/internal/savestore"
	"sandfall/internal/ui"
)

func launch(cfg config.Config, saveDB string) error {
	element, err := cfg.BrushElement()
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := sand.New(sand.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Seed:         seed,
		FallIntoVoid: cfg.FallIntoVoid,
	})
	if err := cfg.Apply(world); err != nil {
		return err
	}

	var store *savestore.Store
	if saveDB != "" {
		store, err = savestore.Open(saveDB, logger)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	game := app.New(world, app.Options{
		Scale:   cfg.Scale,
		Element: element,
		Radius:  cfg.Brush.Radius,
		Speed:   cfg.Speed,
		Store:   store,
	})

	logger.Info("starting", "grid", cfg.Width*cfg.Height, "seed", seed)
	ebiten.SetWindowTitle("sandfall")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale+ui.PanelWidth, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
