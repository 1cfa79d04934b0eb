package main

import (
	"github.com/spf13/cobra"

	"sandfall/internal/config"
)

func newRunCmd(cfgPath *string) *cobra.Command {
	var (
		width, height int
		seed          int64
		scale         int
		speed         float64
		element       string
		radius        int
		void          bool
		saveDB        string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive window (requires the 'ebiten' build tag)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("width") {
				cfg.Width = width
			}
			if flags.Changed("height") {
				cfg.Height = height
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("scale") {
				cfg.Scale = scale
			}
			if flags.Changed("speed") {
				cfg.Speed = speed
			}
			if flags.Changed("element") {
				cfg.Brush.Element = element
			}
			if flags.Changed("radius") {
				cfg.Brush.Radius = radius
			}
			if flags.Changed("void") {
				cfg.FallIntoVoid = void
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return launch(cfg, saveDB)
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "grid width in cells")
	cmd.Flags().IntVar(&height, "height", 0, "grid height in cells")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	cmd.Flags().IntVar(&scale, "scale", 0, "window pixels per cell")
	cmd.Flags().Float64Var(&speed, "speed", 0, "simulation steps per frame")
	cmd.Flags().StringVar(&element, "element", "", "initial brush element")
	cmd.Flags().IntVar(&radius, "radius", 0, "initial brush radius")
	cmd.Flags().BoolVar(&void, "void", false, "bottom edge swallows falling cells")
	cmd.Flags().StringVar(&saveDB, "save-db", defaultSaveDB, "path to the quicksave database")
	return cmd
}
