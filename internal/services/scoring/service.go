package scoring

import (
	"math"

	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/services/combination"
)

// PerfectMultiplier applies when the selection covers the whole board
const PerfectMultiplier = 1.5

// Service scores confirmed selections
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// ComboMultiplier returns the bonus for picking the best combination when
// possible combinations were available
func ComboMultiplier(possible int) float64 {
	switch {
	case possible >= 4:
		return 1.3
	case possible == 3:
		return 1.2
	case possible == 2:
		return 1.1
	default:
		return 1.0
	}
}

// Calculate scores a selection. The board must be the one the player saw,
// before the selected region is regenerated.
func (s *Service) Calculate(board *model.Board, selected model.Bounds) model.ScoreResult {
	finder := combination.Find(board)

	result := model.ScoreResult{
		Bounds:          selected,
		Base:            selected.Area(),
		ComboMultiplier: 1.0,
		PossibleCount:   finder.Count(),
	}
	points := float64(result.Base)

	if best, ok := finder.Best(); ok && best == selected {
		result.WasBest = true
		result.ComboMultiplier = ComboMultiplier(finder.Count())
		points = math.Round(points * result.ComboMultiplier)
	}

	if selected == model.FullBounds(board.Size()) {
		result.Perfect = true
		points = math.Round(points * PerfectMultiplier)
	}

	result.Points = int(points)
	return result
}

// Interface for dependency injection
type ServiceInterface interface {
	Calculate(board *model.Board, selected model.Bounds) model.ScoreResult
}

var _ ServiceInterface = (*Service)(nil)
