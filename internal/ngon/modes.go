package ngon

import (
	"github.com/vovakirdan/superngon/internal/config"
	"github.com/vovakirdan/superngon/internal/registry"
)

// Built-in mode IDs.
const (
	ModeClassic = "classic"
	ModeHyper   = "hyper"
)

func init() {
	registry.Register(registry.Mode{
		ID:          ModeClassic,
		Title:       "Classic",
		Description: "Steady pace: short walls, a relax band after every wall",
	})
	registry.Register(registry.Mode{
		ID:          ModeHyper,
		Title:       "Hyper",
		Description: "Double speed, longer walls, no relax bands, speeds up over time",
		Configure: func(cfg *config.NgonConfig) {
			cfg.Walls.ScrollStep *= 2
			cfg.Walls.MaxLength = 400
			cfg.Walls.Relax = false
			cfg.Walls.OpeningLength = 600
			cfg.Motion.AlignedStart = false
			cfg.Difficulty.Enabled = true
		},
	})
}
