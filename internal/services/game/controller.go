package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mcoot/cornergame/internal/dependencies/clock"
	"github.com/mcoot/cornergame/internal/dependencies/random"
	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/services/board"
	"github.com/mcoot/cornergame/internal/services/combination"
	"github.com/mcoot/cornergame/internal/services/scoring"
	"github.com/mcoot/cornergame/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MaxBoardSize is the largest board a round may be created with
const MaxBoardSize = 16

// Config holds round balance settings
type Config struct {
	// BoardSize is used when a round is created without an explicit size
	BoardSize int
	// RoundDuration is the starting clock in seconds
	RoundDuration float64
	// SecondsPerPoint is the time bonus earned per point scored
	SecondsPerPoint float64
	// AutoReshuffle reshuffles the whole board when regeneration leaves the
	// same single combination in the spot just cleared
	AutoReshuffle bool
}

// DefaultConfig returns the default round settings
func DefaultConfig() Config {
	return Config{
		BoardSize:       6,
		RoundDuration:   60,
		SecondsPerPoint: 0.5,
		AutoReshuffle:   true,
	}
}

// EventSink receives events emitted by the controller
type EventSink interface {
	Publish(event model.Event)
}

type nopSink struct{}

func (nopSink) Publish(model.Event) {}

// Controller drives rounds: countdown, selections, hints, the clock and resets
type Controller struct {
	storage        storage.Storage
	boardService   *board.Service
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	events         EventSink
	cfg            Config
	logger         *slog.Logger

	mu    sync.Mutex
	locks map[model.GameID]*sync.Mutex
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	events EventSink,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	if events == nil {
		events = nopSink{}
	}
	if cfg.BoardSize == 0 {
		cfg.BoardSize = DefaultConfig().BoardSize
	}
	if cfg.RoundDuration <= 0 {
		cfg.RoundDuration = DefaultConfig().RoundDuration
	}
	return &Controller{
		storage:        storage,
		boardService:   boardService,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		events:         events,
		cfg:            cfg,
		logger:         logger,
		locks:          make(map[model.GameID]*sync.Mutex),
	}
}

// Config returns the round settings in use
func (c *Controller) Config() Config {
	return c.cfg
}

// lock serialises mutations of one round
func (c *Controller) lock(id model.GameID) func() {
	c.mu.Lock()
	l, ok := c.locks[id]
	if !ok {
		l = &sync.Mutex{}
		c.locks[id] = l
	}
	c.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// forget drops the lock entry for a round that no longer exists
func (c *Controller) forget(id model.GameID) {
	c.mu.Lock()
	delete(c.locks, id)
	c.mu.Unlock()
}

func (c *Controller) publish(eventType model.EventType, g *model.GameState, payload any) {
	c.events.Publish(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    g.ID,
		PlayerID:  g.PlayerID,
		Payload:   payload,
	})
}

// CreateGame starts a new round in countdown with a solvable board.
// A size of 0 uses the configured default.
func (c *Controller) CreateGame(ctx context.Context, playerID model.PlayerID, size int) (*model.GameState, error) {
	if size == 0 {
		size = c.cfg.BoardSize
	}
	if size < model.MinBoardSize || size > MaxBoardSize {
		return nil, model.ErrInvalidBoardSize
	}

	now := c.clock.Now()
	gameID := model.GameID(c.random.String(12, gameIDAlphabet))

	g := model.NewGameState(gameID, playerID, c.boardService.NewBoard(size), c.cfg.RoundDuration)
	g.StartCountdown()
	g.CreatedAt = now
	g.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, g); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(g.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("round created",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.Int("board_size", size),
	)
	c.publish(model.EventRoundCreated, g, nil)

	return g, nil
}

// GetGame retrieves a round by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.GameState, error) {
	return c.storage.GetGame(ctx, gameID)
}

// getOwned loads a round and checks the player owns it
func (c *Controller) getOwned(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.GameState, error) {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			c.forget(gameID)
		}
		return nil, err
	}
	if g.PlayerID != playerID {
		return nil, model.ErrNotGameOwner
	}
	return g, nil
}

func (c *Controller) save(ctx context.Context, g *model.GameState) error {
	g.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, g)
}

// Start finishes the countdown and starts the round clock
func (c *Controller) Start(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.GameState, error) {
	defer c.lock(gameID)()

	g, err := c.getOwned(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}
	if g.Playing {
		return g, nil
	}

	g.FinishCountdown()
	if err := g.StartPlaying(); err != nil {
		return nil, err
	}
	g.LastTickAt = c.clock.Now()

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("round started", slog.String("game_id", string(gameID)))
	c.publish(model.EventCountdownFinished, g, nil)
	return g, nil
}

// advanceClock applies the wall time since the last tick. Returns true if the round ran out now.
func (c *Controller) advanceClock(g *model.GameState) bool {
	if !g.Playing {
		return false
	}
	dt := clock.SecondsSince(c.clock, g.LastTickAt)
	g.LastTickAt = c.clock.Now()
	return g.Tick(dt)
}

// finishRound records the summary of a round that has just timed out
func (c *Controller) finishRound(ctx context.Context, g *model.GameState) error {
	summary := g.Summary(c.clock.Now())
	if err := c.storage.SaveRoundSummary(ctx, &summary); err != nil {
		return err
	}

	c.logger.Info("round timed out",
		slog.String("game_id", string(g.ID)),
		slog.String("player_id", string(g.PlayerID)),
		slog.Int("score", g.Score),
		slog.Float64("elapsed", g.ElapsedTime),
	)
	c.publish(model.EventRoundTimedOut, g, model.RoundTimedOutPayload{Summary: summary})
	return nil
}

// Select plays four cells. A selection that is not a same-colored rectangle
// comes back with Accepted=false and changes nothing.
func (c *Controller) Select(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cells []model.Coordinate) (*model.SelectionResult, error) {
	defer c.lock(gameID)()

	g, err := c.getOwned(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}
	if g.TimedOut {
		return nil, model.ErrRoundTimedOut
	}
	if !g.Playing {
		return nil, model.ErrRoundNotPlaying
	}
	for _, cell := range cells {
		if !g.Board.InBounds(cell) {
			return nil, model.ErrInvalidPosition
		}
	}

	if c.advanceClock(g) {
		if err := c.finishRound(ctx, g); err != nil {
			return nil, err
		}
		if err := c.save(ctx, g); err != nil {
			return nil, err
		}
		return nil, model.ErrRoundTimedOut
	}

	if !c.boardService.Selection(g.Board, cells) {
		if err := c.save(ctx, g); err != nil {
			return nil, err
		}
		c.publish(model.EventSelectionRejected, g, model.SelectionRejectedPayload{Cells: cells})
		return &model.SelectionResult{Accepted: false}, nil
	}

	sel, _ := board.Resolve(g.Board, cells)
	selected := sel.Bounds()

	// Scored against the board the player saw
	score := c.scoringService.Calculate(g.Board, selected)
	bonus := float64(score.Points) * c.cfg.SecondsPerPoint
	g.AddScore(score.Points)
	g.AddTime(bonus)
	g.Selections++
	if score.Perfect {
		g.Perfects++
	}

	c.boardService.RandomizeRegion(g.Board, selected.BottomLeft(), selected.TopRight())
	g.ClearHint()

	reshuffled := false
	if c.cfg.AutoReshuffle && isStuck(g.Board, selected) {
		c.boardService.Randomize(g.Board)
		reshuffled = true
	}

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("selection accepted",
		slog.String("game_id", string(gameID)),
		slog.String("bounds", selected.String()),
		slog.Int("points", score.Points),
		slog.Bool("perfect", score.Perfect),
		slog.Bool("reshuffled", reshuffled),
	)
	c.publish(model.EventSelectionAccepted, g, model.SelectionAcceptedPayload{
		Score:      score,
		TotalScore: g.Score,
		Remaining:  g.RemainingTime,
		Reshuffled: reshuffled,
	})
	if reshuffled {
		c.publish(model.EventBoardReshuffled, g, model.BoardReshuffledPayload{Reason: "stuck"})
	}

	return &model.SelectionResult{
		Accepted:   true,
		Score:      &score,
		TimeBonus:  bonus,
		Reshuffled: reshuffled,
	}, nil
}

// isStuck reports whether regeneration left the board with one combination
// sitting exactly where the previous one was
func isStuck(b *model.Board, previous model.Bounds) bool {
	f := combination.Find(b)
	if f.Count() != 1 {
		return false
	}
	only, _ := f.Combination()
	return only == previous
}

// Hint returns a combination to show the player, caching it until the next selection
func (c *Controller) Hint(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (model.Bounds, error) {
	defer c.lock(gameID)()

	g, err := c.getOwned(ctx, gameID, playerID)
	if err != nil {
		return model.Bounds{}, err
	}
	if g.TimedOut {
		return model.Bounds{}, model.ErrRoundTimedOut
	}
	if !g.Playing {
		return model.Bounds{}, model.ErrRoundNotPlaying
	}

	if g.Wiggled == nil {
		hint, ok := combination.Find(g.Board).Combination()
		if !ok {
			return model.Bounds{}, model.ErrNoCombinationFound
		}
		g.Wiggled = &hint
	}
	g.CheatSeen = true

	if err := c.save(ctx, g); err != nil {
		return model.Bounds{}, err
	}

	c.publish(model.EventHintShown, g, model.HintShownPayload{Bounds: *g.Wiggled})
	return *g.Wiggled, nil
}

// Tick brings the round clock up to date, timing the round out when it runs dry
func (c *Controller) Tick(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.GameState, error) {
	defer c.lock(gameID)()

	g, err := c.getOwned(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	if c.advanceClock(g) {
		if err := c.finishRound(ctx, g); err != nil {
			return nil, err
		}
	}

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// EndRound times the round out immediately
func (c *Controller) EndRound(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.GameState, error) {
	defer c.lock(gameID)()

	g, err := c.getOwned(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}
	if g.TimedOut {
		return g, nil
	}

	c.advanceClock(g)
	if !g.TimedOut {
		g.TimeOut()
	}
	if err := c.finishRound(ctx, g); err != nil {
		return nil, err
	}
	if err := c.save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Reshuffle rerolls the whole board, for rounds where the player asks for a fresh layout
func (c *Controller) Reshuffle(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.GameState, error) {
	defer c.lock(gameID)()

	g, err := c.getOwned(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}
	if g.TimedOut {
		return nil, model.ErrRoundTimedOut
	}

	c.boardService.Randomize(g.Board)
	g.ClearHint()

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("board reshuffled", slog.String("game_id", string(gameID)))
	c.publish(model.EventBoardReshuffled, g, model.BoardReshuffledPayload{Reason: "requested"})
	return g, nil
}

// Reset puts the round back to its initial state with a fresh board, ready for a new countdown
func (c *Controller) Reset(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.GameState, error) {
	defer c.lock(gameID)()

	g, err := c.getOwned(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	g.Reset(c.boardService.NewBoard(g.Board.Size()), c.cfg.RoundDuration)
	g.StartCountdown()

	if err := c.save(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("round reset", slog.String("game_id", string(gameID)))
	c.publish(model.EventRoundReset, g, nil)
	return g, nil
}

// DeleteGame discards a round
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	defer c.lock(gameID)()

	if _, err := c.getOwned(ctx, gameID, playerID); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.forget(gameID)
	return nil
}

// ListRounds returns a player's finished rounds, newest first
func (c *Controller) ListRounds(ctx context.Context, playerID model.PlayerID, limit int) ([]model.RoundSummary, error) {
	return c.storage.GetRoundSummaries(ctx, playerID, limit)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, playerID model.PlayerID, size int) (*model.GameState, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.GameState, error)
	Start(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.GameState, error)
	Select(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cells []model.Coordinate) (*model.SelectionResult, error)
	Hint(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (model.Bounds, error)
	Tick(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.GameState, error)
	EndRound(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.GameState, error)
	Reshuffle(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.GameState, error)
	Reset(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.GameState, error)
	DeleteGame(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	ListRounds(ctx context.Context, playerID model.PlayerID, limit int) ([]model.RoundSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)
