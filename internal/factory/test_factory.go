package factory

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/cornergame/internal/dependencies/mocks"
	"github.com/mcoot/cornergame/internal/dependencies/random"
	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/services/auth"
	"github.com/mcoot/cornergame/internal/services/board"
	"github.com/mcoot/cornergame/internal/services/game"
	"github.com/mcoot/cornergame/internal/storage/memory"
	"github.com/mcoot/cornergame/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App with a mock clock and a mock random that falls
// back to a fixed seed, so unqueued draws are still reproducible
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(game.DefaultConfig())
}

// NewTestAppWithConfig is NewTestApp with custom round settings
func NewTestAppWithConfig(gameCfg game.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandomWithFallback(random.NewSeeded(42))

	authCfg := auth.DefaultConfig()
	authCfg.BcryptCost = bcrypt.MinCost

	app := newWithDependencies(store, mockClock, mockRandom, mockRandom, authCfg, gameCfg, board.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// PlaceBoard swaps in a known layout for a stored round
func (t *TestApp) PlaceBoard(ctx context.Context, id model.GameID, rows ...string) error {
	g, err := t.Storage.GetGame(ctx, id)
	if err != nil {
		return err
	}
	b, err := model.ParseBoard(rows...)
	if err != nil {
		return err
	}
	g.Board = b
	g.ClearHint()
	return t.Storage.SaveGame(ctx, g)
}
