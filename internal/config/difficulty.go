package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level. Difficulty only
// controls how much of the upcoming balls the player gets to see.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Visibility describes what a preview of pending balls may reveal.
type Visibility int

const (
	VisibilityFull     Visibility = iota // positions and colors
	VisibilityPosition                   // positions only
	VisibilityHidden                     // nothing
)

// String returns the string representation of a visibility level.
func (v Visibility) String() string {
	switch v {
	case VisibilityFull:
		return "full"
	case VisibilityPosition:
		return "position"
	case VisibilityHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a preset name to a DifficultyPreset.
// "normal" is accepted as an alias for medium.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium, "normal":
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// PreviewVisibility returns what a preset reveals about pending balls.
// Unknown presets reveal everything.
func (d DifficultyPreset) PreviewVisibility() Visibility {
	p, _ := ParseDifficulty(string(d))
	switch p {
	case DifficultyMedium:
		return VisibilityPosition
	case DifficultyHard:
		return VisibilityHidden
	default:
		return VisibilityFull
	}
}

// Presets returns all difficulty presets in increasing order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}
