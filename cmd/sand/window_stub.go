//go:build !ebiten

package main

import (
	"errors"

	"sandfall/internal/config"
)

func launch(config.Config, string) error {
	return errors.New("the interactive window requires the 'ebiten' build tag; re-run with `go run -tags ebiten ./cmd/sand run`")
}
