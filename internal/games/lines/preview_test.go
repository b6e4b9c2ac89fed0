package lines

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/color-lines/internal/config"
	"github.com/vovakirdan/color-lines/internal/games/lines/core"
)

func TestPreviewFor(t *testing.T) {
	pending := []core.Ball{
		{At: core.C(1, 2), Color: core.ColorRed},
		{At: core.C(3, 4), Color: core.ColorCyan},
	}

	tests := []struct {
		difficulty config.DifficultyPreset
		want       []PreviewBall
	}{
		{config.DifficultyEasy, []PreviewBall{
			{At: core.C(1, 2), Color: core.ColorRed},
			{At: core.C(3, 4), Color: core.ColorCyan},
		}},
		{config.DifficultyMedium, []PreviewBall{
			{At: core.C(1, 2)},
			{At: core.C(3, 4)},
		}},
		{config.DifficultyHard, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			got := PreviewFor(pending, tt.difficulty.PreviewVisibility())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshotViewJSON(t *testing.T) {
	g := emptyGame(t, 1)
	put(t, g.board, core.ColorBlue, core.C(0, 0))
	g.pending = []core.Ball{{At: core.C(2, 2), Color: core.ColorRed}}

	data, err := json.Marshal(g.Snapshot().View(config.VisibilityPosition))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, core.Encode(g.board), got["board"])
	assert.Equal(t, "playing", got["state"])
	assert.Equal(t, "B........", got["rows"].([]any)[0])
	assert.NotContains(t, got, "Pending")
	assert.Equal(t, []any{map[string]any{"at": map[string]any{"x": 2.0, "y": 2.0}}}, got["next"])

	data, err = json.Marshal(g.Snapshot().View(config.VisibilityHidden))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"next":[]`)
}
