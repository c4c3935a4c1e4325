package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/cornergame/internal/dependencies/clock"
	"github.com/mcoot/cornergame/internal/dependencies/random"
	"github.com/mcoot/cornergame/internal/services/auth"
	"github.com/mcoot/cornergame/internal/services/board"
	"github.com/mcoot/cornergame/internal/services/bot"
	"github.com/mcoot/cornergame/internal/services/game"
	"github.com/mcoot/cornergame/internal/services/scoring"
	"github.com/mcoot/cornergame/internal/storage"
	"github.com/mcoot/cornergame/internal/storage/memory"
	redisstorage "github.com/mcoot/cornergame/internal/storage/redis"
	"github.com/mcoot/cornergame/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	// Random draws IDs and session tokens; always crypto backed outside tests
	Random random.Random
	// BoardRandom draws board colors and random bot moves; seeded when Config.Seed is set
	BoardRandom random.Random

	// Services
	BoardService   *board.Service
	ScoringService *scoring.Service
	GameController *game.Controller
	AuthService    *auth.Service
	BotService     *bot.Service
	HubManager     *sse.HubManager
	Broadcaster    *sse.Broadcaster

	logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// GameConfig holds round settings (optional)
	// If zero value, defaults to game.DefaultConfig()
	GameConfig game.Config
	// BoardConfig bounds board rerolls (optional)
	BoardConfig board.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed makes board generation reproducible when non-zero
	Seed uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	var boardRnd random.Random = random.New()
	if cfg.Seed != 0 {
		boardRnd = random.NewSeeded(cfg.Seed)
		logger.Info("using seeded random", slog.Uint64("seed", cfg.Seed))
	}

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}
	gameCfg := cfg.GameConfig
	if gameCfg == (game.Config{}) {
		gameCfg = game.DefaultConfig()
	}

	return newWithDependencies(store, clk, random.New(), boardRnd, authCfg, gameCfg, cfg.BoardConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	boardRnd random.Random,
	authCfg auth.Config,
	gameCfg game.Config,
	boardCfg board.Config,
	logger *slog.Logger,
) *App {
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)

	boardService := board.New(boardRnd, boardCfg, logger.With(slog.String("component", "board")))
	scoringService := scoring.New()
	gameController := game.NewController(
		store, boardService, scoringService, clk, rnd, broadcaster, gameCfg,
		logger.With(slog.String("component", "game")),
	)
	authService := auth.New(store, clk, rnd, authCfg, logger.With(slog.String("component", "auth")))
	botService := bot.NewService(gameController, bot.DefaultStrategies(boardRnd), logger.With(slog.String("component", "bot")))

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		BoardRandom:    boardRnd,
		BoardService:   boardService,
		ScoringService: scoringService,
		GameController: gameController,
		AuthService:    authService,
		BotService:     botService,
		HubManager:     hubManager,
		Broadcaster:    broadcaster,
		logger:         logger,
	}
}

// RunMaintenance drops expired sessions and idle event hubs every interval until ctx is done
func (a *App) RunMaintenance(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Sweep()
		}
	}
}

// Sweep runs one maintenance pass
func (a *App) Sweep() {
	sessions := a.AuthService.CleanExpiredSessions()
	hubs := a.HubManager.CleanupEmptyHubs()
	if sessions > 0 || hubs > 0 {
		a.logger.Info("maintenance sweep",
			slog.Int("expired_sessions", sessions),
			slog.Int("idle_hubs", hubs),
		)
	}
}
