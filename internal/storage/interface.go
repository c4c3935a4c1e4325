package storage

import (
	"context"

	"github.com/mcoot/cornergame/internal/model"
)

// DefaultMaxSummaries is how many round summaries a store keeps per player
const DefaultMaxSummaries = 100

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.GameState) error
	GetGame(ctx context.Context, id model.GameID) (*model.GameState, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Round summary operations, newest first
	SaveRoundSummary(ctx context.Context, summary *model.RoundSummary) error
	GetRoundSummaries(ctx context.Context, playerID model.PlayerID, limit int) ([]model.RoundSummary, error)
}
