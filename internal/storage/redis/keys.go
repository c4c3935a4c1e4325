package redis

import (
	"fmt"

	"github.com/mcoot/cornergame/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "cgame"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// registeredPlayerKey returns the Redis key for a RegisteredPlayer
func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// gameKey returns the Redis key for a round in progress
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// summariesKey returns the Redis key for the LIST of a player's finished rounds
func summariesKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:summaries:%s", keyPrefix, playerID)
}
