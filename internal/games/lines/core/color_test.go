package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/color-lines/internal/games/lines/core"
)

func TestColorCharRoundTrip(t *testing.T) {
	for _, c := range core.Palette {
		got, ok := core.ColorFromChar(c.Char())
		assert.True(t, ok, "%s", c)
		assert.Equal(t, c, got)
	}

	_, ok := core.ColorFromChar('0')
	assert.False(t, ok)
	assert.Equal(t, byte('0'), core.ColorNone.Char())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want core.Color
		ok   bool
	}{
		{"red", core.ColorRed, true},
		{"Blue", core.ColorBlue, true},
		{"b", core.ColorBlack, true},
		{"B", core.ColorBlue, true},
		{"magenta", core.ColorMagenta, true},
		{"purple", core.ColorNone, false},
		{"", core.ColorNone, false},
	}
	for _, tt := range tests {
		got, ok := core.ParseColor(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseColor(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseColor(%q)", tt.in)
	}
}

func TestColorJSON(t *testing.T) {
	ball := core.Ball{At: core.C(2, 3), Color: core.ColorCyan}
	data, err := json.Marshal(ball)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":{"x":2,"y":3},"color":"cyan"}`, string(data))

	var back core.Ball
	require.NoError(t, json.Unmarshal([]byte(`{"at":{"x":2,"y":3},"color":"B"}`), &back))
	assert.Equal(t, core.Ball{At: core.C(2, 3), Color: core.ColorBlue}, back)

	err = json.Unmarshal([]byte(`{"color":"purple"}`), &back)
	assert.ErrorIs(t, err, core.ErrInvalidColor)
}
