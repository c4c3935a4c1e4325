// Package bot plays rounds automatically, for demos and for checking that
// boards stay playable over long runs.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/services/game"
)

const (
	// MaxMoves is a safety limit on how many moves a single Play call makes
	MaxMoves = 100
)

// ErrUnknownStrategy is returned for a strategy name with no registered strategy
var ErrUnknownStrategy = errors.New("unknown bot strategy")

// ActionType represents the type of action a bot took
type ActionType string

const (
	ActionSelect    ActionType = "select"
	ActionReshuffle ActionType = "reshuffle"
	ActionTimedOut  ActionType = "timed_out"
)

// Action represents a single action taken by a bot during Play
type Action struct {
	Type   ActionType         `json:"type"`
	Bounds *model.Bounds      `json:"bounds,omitempty"`
	Score  *model.ScoreResult `json:"score,omitempty"`
}

// Service plays moves on a player's round
type Service struct {
	gameController *game.Controller
	strategies     map[string]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(gameController *game.Controller, strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		gameController: gameController,
		strategies:     strategies,
		logger:         logger,
	}
}

// Play makes up to moves selections on the round using the named strategy.
// A board the strategy finds nothing on is reshuffled; that also counts as a
// move. Play stops early once the round times out.
func (s *Service) Play(ctx context.Context, gameID model.GameID, playerID model.PlayerID, strategy string, moves int) ([]Action, error) {
	st, ok := s.strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
	moves = min(max(moves, 1), MaxMoves)

	var actions []Action
	for range moves {
		g, err := s.gameController.Tick(ctx, gameID, playerID)
		if err != nil {
			return actions, err
		}
		if g.TimedOut {
			actions = append(actions, Action{Type: ActionTimedOut})
			break
		}

		bounds, found := st.Choose(g.Board)
		if !found {
			if _, err := s.gameController.Reshuffle(ctx, gameID, playerID); err != nil {
				return actions, err
			}
			actions = append(actions, Action{Type: ActionReshuffle})
			continue
		}

		result, err := s.gameController.Select(ctx, gameID, playerID, bounds.Corners())
		if errors.Is(err, model.ErrRoundTimedOut) {
			actions = append(actions, Action{Type: ActionTimedOut})
			break
		}
		if err != nil {
			return actions, err
		}
		if !result.Accepted {
			// The strategy only returns combinations it found on this board
			return actions, fmt.Errorf("bot selection %s was rejected", bounds)
		}

		actions = append(actions, Action{
			Type:   ActionSelect,
			Bounds: &bounds,
			Score:  result.Score,
		})
	}

	s.logger.Info("bot played",
		slog.String("game_id", string(gameID)),
		slog.String("strategy", strategy),
		slog.Int("actions", len(actions)),
	)
	return actions, nil
}

// Strategies returns the registered strategy names
func (s *Service) Strategies() []string {
	names := make([]string, 0, len(s.strategies))
	for _, name := range model.ValidBotStrategies() {
		if _, ok := s.strategies[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
