package memory

import (
	"context"
	"sync"

	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Games are copied on the way in and out so callers never share a board.
type Storage struct {
	mu sync.RWMutex

	players           map[model.PlayerID]*model.Player
	registeredPlayers map[model.PlayerID]*model.RegisteredPlayer
	usernameIndex     map[string]model.PlayerID
	games             map[model.GameID]*model.GameState
	summaries         map[model.PlayerID][]model.RoundSummary

	maxSummaries int
}

// New creates a new in-memory storage instance keeping the default round history
func New() *Storage {
	return NewWithMaxSummaries(storage.DefaultMaxSummaries)
}

// NewWithMaxSummaries caps the round history kept per player; 0 keeps everything
func NewWithMaxSummaries(maxSummaries int) *Storage {
	return &Storage{
		maxSummaries:      maxSummaries,
		players:           make(map[model.PlayerID]*model.Player),
		registeredPlayers: make(map[model.PlayerID]*model.RegisteredPlayer),
		usernameIndex:     make(map[string]model.PlayerID),
		games:             make(map[model.GameID]*model.GameState),
		summaries:         make(map[model.PlayerID][]model.RoundSummary),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *player
	s.players[player.ID] = &p
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	p := *player
	return &p, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Registered player operations

func (s *Storage) SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := *rp
	s.registeredPlayers[rp.PlayerID] = &r
	s.usernameIndex[rp.Username] = rp.PlayerID
	return nil
}

func (s *Storage) GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	r := *rp
	return &r, nil
}

func (s *Storage) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	playerID, ok := s.usernameIndex[username]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return s.GetRegisteredPlayer(ctx, playerID)
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game.Clone()
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game.Clone(), nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Round summary operations

func (s *Storage) SaveRoundSummary(ctx context.Context, summary *model.RoundSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := s.summaries[summary.PlayerID]
	summaries := append([]model.RoundSummary{*summary}, existing...)
	if s.maxSummaries > 0 && len(summaries) > s.maxSummaries {
		summaries = summaries[:s.maxSummaries]
	}
	s.summaries[summary.PlayerID] = summaries
	return nil
}

func (s *Storage) GetRoundSummaries(ctx context.Context, playerID model.PlayerID, limit int) ([]model.RoundSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.summaries[playerID]
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}
	result := make([]model.RoundSummary, limit)
	copy(result, all[:limit])
	return result, nil
}
