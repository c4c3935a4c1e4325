package bot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/cornergame/internal/dependencies/mocks"
	"github.com/mcoot/cornergame/internal/dependencies/random"
	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/services/board"
	"github.com/mcoot/cornergame/internal/services/bot"
	"github.com/mcoot/cornergame/internal/services/combination"
	"github.com/mcoot/cornergame/internal/services/game"
	"github.com/mcoot/cornergame/internal/services/scoring"
	"github.com/mcoot/cornergame/internal/storage/memory"
	"github.com/mcoot/cornergame/internal/testutil"
)

const owner model.PlayerID = "player-1"

var fourCombinationRows = []string{
	"R B R R Y R",
	"Y G G G Y G",
	"Y R G R G Y",
	"G G B Y R R",
	"Y B R Y B R",
	"R Y G R Y R",
}

type ServiceSuite struct {
	suite.Suite
	store      *memory.Storage
	mockClock  *mocks.MockClock
	mockRandom *mocks.MockRandom

	gameController *game.Controller
	botService     *bot.Service

	ctx context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.mockClock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.mockRandom = mocks.NewMockRandomWithFallback(random.NewSeeded(3))
	logger := testutil.NopLogger()
	s.ctx = context.Background()

	boardService := board.New(s.mockRandom, board.DefaultConfig(), logger)
	s.gameController = game.NewController(s.store, boardService, scoring.New(), s.mockClock, s.mockRandom, nil, game.DefaultConfig(), logger)
	s.botService = bot.NewService(s.gameController, bot.DefaultStrategies(s.mockRandom), logger)
}

func (s *ServiceSuite) playingRound(rows ...string) model.GameID {
	g, err := s.gameController.CreateGame(s.ctx, owner, len(rows))
	s.Require().NoError(err)
	_, err = s.gameController.Start(s.ctx, g.ID, owner)
	s.Require().NoError(err)

	stored, err := s.store.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	stored.Board = model.MustParseBoard(rows...)
	s.Require().NoError(s.store.SaveGame(s.ctx, stored))
	return g.ID
}

// Strategy tests

func (s *ServiceSuite) TestGreedyTakesLargest() {
	bounds, ok := bot.GreedyStrategy{}.Choose(model.MustParseBoard(fourCombinationRows...))
	s.Require().True(ok)
	s.Equal(model.FullBounds(6), bounds)
}

func (s *ServiceSuite) TestCautiousTakesSmallest() {
	bounds, ok := bot.CautiousStrategy{}.Choose(model.MustParseBoard(fourCombinationRows...))
	s.Require().True(ok)
	s.Equal(model.Bounds{MinX: 3, MinY: 0, MaxX: 5, MaxY: 5}, bounds)
}

func (s *ServiceSuite) TestRandomPicksFromPossible() {
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(2)

	bounds, ok := bot.NewRandomStrategy(rnd).Choose(model.MustParseBoard(fourCombinationRows...))
	s.Require().True(ok)
	s.Equal(model.Bounds{MinX: 2, MinY: 1, MaxX: 5, MaxY: 5}, bounds)
}

func (s *ServiceSuite) TestStrategiesFindNothingOnUnsolvableBoard() {
	b := model.MustParseBoard("R B", "G Y")

	for name, st := range bot.DefaultStrategies(s.mockRandom) {
		_, ok := st.Choose(b)
		s.False(ok, name)
	}
}

// Play tests

func (s *ServiceSuite) TestPlayGreedy() {
	id := s.playingRound(fourCombinationRows...)

	actions, err := s.botService.Play(s.ctx, id, owner, model.BotStrategyGreedy, 3)
	s.Require().NoError(err)
	s.Require().Len(actions, 3)

	first := actions[0]
	s.Equal(bot.ActionSelect, first.Type)
	s.Require().NotNil(first.Bounds)
	s.Equal(model.FullBounds(6), *first.Bounds)
	s.Equal(71, first.Score.Points)

	g, err := s.gameController.GetGame(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(3, g.Selections)
	total := 0
	for _, a := range actions {
		s.Equal(bot.ActionSelect, a.Type)
		total += a.Score.Points
	}
	s.Equal(total, g.Score)
	s.True(combination.Find(g.Board).HasCombinations())
}

func (s *ServiceSuite) TestPlayReshufflesWhenNothingFound() {
	id := s.playingRound("R B", "G Y")

	actions, err := s.botService.Play(s.ctx, id, owner, model.BotStrategyCautious, 2)
	s.Require().NoError(err)
	s.Require().Len(actions, 2)
	s.Equal(bot.ActionReshuffle, actions[0].Type)
	s.Equal(bot.ActionSelect, actions[1].Type)
}

func (s *ServiceSuite) TestPlayStopsWhenTimedOut() {
	id := s.playingRound(fourCombinationRows...)
	s.mockClock.Advance(2 * time.Minute)

	actions, err := s.botService.Play(s.ctx, id, owner, model.BotStrategyRandom, 5)
	s.Require().NoError(err)
	s.Equal([]bot.Action{{Type: bot.ActionTimedOut}}, actions)
}

func (s *ServiceSuite) TestPlayClampsMoves() {
	id := s.playingRound(fourCombinationRows...)

	actions, err := s.botService.Play(s.ctx, id, owner, model.BotStrategyGreedy, 0)
	s.Require().NoError(err)
	s.Len(actions, 1)
}

func (s *ServiceSuite) TestPlayErrors() {
	id := s.playingRound(fourCombinationRows...)

	_, err := s.botService.Play(s.ctx, id, owner, "psychic", 1)
	s.ErrorIs(err, bot.ErrUnknownStrategy)

	_, err = s.botService.Play(s.ctx, id, "intruder", model.BotStrategyGreedy, 1)
	s.ErrorIs(err, model.ErrNotGameOwner)

	g, err := s.gameController.CreateGame(s.ctx, owner, 4)
	s.Require().NoError(err)
	_, err = s.botService.Play(s.ctx, g.ID, owner, model.BotStrategyGreedy, 1)
	s.ErrorIs(err, model.ErrRoundNotPlaying)
}

func (s *ServiceSuite) TestStrategies() {
	s.Equal(model.ValidBotStrategies(), s.botService.Strategies())
	s.Equal("Greedy", model.BotStrategyDisplayName(model.BotStrategyGreedy))
	s.Equal("other", model.BotStrategyDisplayName("other"))
}
