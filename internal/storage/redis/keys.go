package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "lines"

// memberSep separates the ordering prefix of a score member from its JSON
const memberSep = "|"

// scoresKey returns the Redis key for the sorted set of a variant's scores
func scoresKey(variant string) string {
	return fmt.Sprintf("%s:scores:%s", keyPrefix, variant)
}

// saveKey returns the Redis key for a saved game slot
func saveKey(slot string) string {
	return fmt.Sprintf("%s:save:%s", keyPrefix, slot)
}
