package board

import (
	"log/slog"

	"github.com/mcoot/cornergame/internal/dependencies/random"
	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/services/combination"
	"github.com/mcoot/cornergame/internal/services/selection"
)

// Config bounds the reroll loop that keeps boards solvable
type Config struct {
	// MaxRegionAttempts is how many times a region is rerolled before widening to the whole board
	MaxRegionAttempts int
	// MaxBoardAttempts is how many whole-board rerolls are tried before painting a safe pattern
	MaxBoardAttempts int
}

// DefaultConfig returns the default reroll limits
func DefaultConfig() Config {
	return Config{
		MaxRegionAttempts: 64,
		MaxBoardAttempts:  64,
	}
}

// Service creates and mutates boards while keeping them solvable
type Service struct {
	random random.Random
	cfg    Config
	logger *slog.Logger
}

// New creates a new BoardService
func New(random random.Random, cfg Config, logger *slog.Logger) *Service {
	defaults := DefaultConfig()
	if cfg.MaxRegionAttempts <= 0 {
		cfg.MaxRegionAttempts = defaults.MaxRegionAttempts
	}
	if cfg.MaxBoardAttempts <= 0 {
		cfg.MaxBoardAttempts = defaults.MaxBoardAttempts
	}
	return &Service{
		random: random,
		cfg:    cfg,
		logger: logger,
	}
}

// NewBoard creates a randomized, solvable board
func (s *Service) NewBoard(size int) *model.Board {
	b := model.NewBoard(size)
	s.Randomize(b)
	return b
}

// Randomize rerolls the whole board
func (s *Service) Randomize(b *model.Board) {
	full := model.FullBounds(b.Size())
	s.RandomizeRegion(b, full.BottomLeft(), full.TopRight())
}

// RandomizeRegion gives every ball in the inclusive region a random color and
// rerolls until the whole board holds at least one combination.
// Returns the number of rolls it took.
func (s *Service) RandomizeRegion(b *model.Board, bottomLeft, topRight model.Coordinate) int {
	region := model.NewBounds(bottomLeft, topRight)
	if !b.InBounds(region.BottomLeft()) || !b.InBounds(region.TopRight()) {
		panic("randomize region " + region.String() + " outside board")
	}

	for attempt := 1; attempt <= s.cfg.MaxRegionAttempts; attempt++ {
		s.fill(b, region)
		if combination.Find(b).HasCombinations() {
			return attempt
		}
	}

	full := model.FullBounds(b.Size())
	s.logger.Warn("region reroll exhausted, widening to whole board",
		slog.String("region", region.String()),
		slog.Int("attempts", s.cfg.MaxRegionAttempts),
	)
	for attempt := 1; attempt <= s.cfg.MaxBoardAttempts; attempt++ {
		s.fill(b, full)
		if combination.Find(b).HasCombinations() {
			return s.cfg.MaxRegionAttempts + attempt
		}
	}

	s.logger.Warn("board reroll exhausted, painting safe block",
		slog.Int("size", b.Size()),
		slog.Int("attempts", s.cfg.MaxBoardAttempts),
	)
	s.paintSafeBlock(b, region)
	return s.cfg.MaxRegionAttempts + s.cfg.MaxBoardAttempts + 1
}

// fill assigns a uniformly random color to every ball in the region
func (s *Service) fill(b *model.Board, region model.Bounds) {
	colors := model.Colors()
	for x := region.MinX; x <= region.MaxX; x++ {
		for y := region.MinY; y <= region.MaxY; y++ {
			b.SetColor(x, y, colors[s.random.Intn(len(colors))])
		}
	}
}

// paintSafeBlock colors a 2×2 block at the region's bottom-left corner with
// one color, which is always a combination
func (s *Service) paintSafeBlock(b *model.Board, region model.Bounds) {
	x := min(region.MinX, b.Size()-2)
	y := min(region.MinY, b.Size()-2)
	color := b.ColorAt(x, y)
	if !color.IsSet() {
		color = model.Colors()[0]
	}
	for dx := 0; dx < 2; dx++ {
		for dy := 0; dy < 2; dy++ {
			b.SetColor(x+dx, y+dy, color)
		}
	}
}

// Selection reports whether the four cells form a legal move on the board.
// It never mutates the board.
func (s *Service) Selection(b *model.Board, cells []model.Coordinate) bool {
	sel, ok := Resolve(b, cells)
	if !ok {
		return false
	}
	return sel.Valid()
}

// Resolve looks up the balls for the given cells. It returns false when there
// are not exactly four cells or a cell lies outside the board.
func Resolve(b *model.Board, cells []model.Coordinate) (*selection.Selection, bool) {
	if len(cells) != selection.Size {
		return nil, false
	}
	balls := make([]model.Ball, 0, selection.Size)
	for _, c := range cells {
		if !b.InBounds(c) {
			return nil, false
		}
		balls = append(balls, b.Ball(c.X, c.Y))
	}
	return selection.New(balls), true
}

// Interface for dependency injection
type ServiceInterface interface {
	NewBoard(size int) *model.Board
	Randomize(b *model.Board)
	RandomizeRegion(b *model.Board, bottomLeft, topRight model.Coordinate) int
	Selection(b *model.Board, cells []model.Coordinate) bool
}

var _ ServiceInterface = (*Service)(nil)
