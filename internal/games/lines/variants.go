package lines

import "github.com/vovakirdan/color-lines/internal/registry"

// Registered variant IDs.
const (
	VariantClassic = "lines"
	VariantMini    = "lines_mini"
)

func init() {
	registry.Register(registry.Variant{
		ID:           VariantClassic,
		Title:        "Color Lines",
		Size:         9,
		BallsPerTurn: 3,
		InitialBalls: 3,
	})
	registry.Register(registry.Variant{
		ID:           VariantMini,
		Title:        "Color Lines (Mini)",
		Size:         7,
		BallsPerTurn: 3,
		InitialBalls: 3,
	})
}
