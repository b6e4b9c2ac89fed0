package lines

import (
	"github.com/vovakirdan/color-lines/internal/config"
	"github.com/vovakirdan/color-lines/internal/games/lines/core"
)

// PreviewBall is an upcoming ball as shown to the player. Color is
// ColorNone when the difficulty hides it.
type PreviewBall struct {
	At    core.Coord `json:"at"`
	Color core.Color `json:"color,omitempty"`
}

// PreviewFor reveals pending balls according to v: positions and colors,
// positions only, or nothing (nil).
func PreviewFor(pending []core.Ball, v config.Visibility) []PreviewBall {
	if v == config.VisibilityHidden || len(pending) == 0 {
		return nil
	}
	out := make([]PreviewBall, 0, len(pending))
	for _, ball := range pending {
		p := PreviewBall{At: ball.At}
		if v == config.VisibilityFull {
			p.Color = ball.Color
		}
		out = append(out, p)
	}
	return out
}
