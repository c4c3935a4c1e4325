package bot

import (
	"github.com/mcoot/cornergame/internal/dependencies/random"
	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/services/combination"
)

// Strategy defines which combination a bot plays on a board
type Strategy interface {
	// Choose picks a combination, or returns false when the board has none
	Choose(board *model.Board) (model.Bounds, bool)
}

// GreedyStrategy always takes the largest combination, earning the combo bonus
type GreedyStrategy struct{}

// Choose returns the best combination
func (GreedyStrategy) Choose(board *model.Board) (model.Bounds, bool) {
	return combination.Find(board).Best()
}

// CautiousStrategy takes the smallest combination, leaving most of the board intact
type CautiousStrategy struct{}

// Choose returns the worst combination
func (CautiousStrategy) Choose(board *model.Board) (model.Bounds, bool) {
	return combination.Find(board).Worst()
}

// RandomStrategy picks any available combination
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Choose returns a uniformly chosen combination
func (s *RandomStrategy) Choose(board *model.Board) (model.Bounds, bool) {
	possible := combination.Find(board).PossibleBounds()
	if len(possible) == 0 {
		return model.Bounds{}, false
	}
	return possible[s.random.Intn(len(possible))], true
}

// DefaultStrategies returns every strategy keyed by name
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyRandom:   NewRandomStrategy(rnd),
		model.BotStrategyGreedy:   GreedyStrategy{},
		model.BotStrategyCautious: CautiousStrategy{},
	}
}
