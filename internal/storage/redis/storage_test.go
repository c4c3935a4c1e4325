package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/cornergame/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GuestPlayerTTL = time.Hour
	cfg.GameTTL = 2 * time.Hour
	cfg.MaxSummaries = 3

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestNewConnectsViaURL() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()

	st, err := New(cfg)
	s.Require().NoError(err)
	s.NoError(st.Close())
}

func (s *StorageSuite) TestNewRejectsBadURL() {
	cfg := DefaultConfig()
	cfg.URL = "not-a-url"

	_, err := New(cfg)
	s.Error(err)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		DisplayName: "Alice",
		IsGuest:     false,
		CreatedAt:   time.Now(),
	}

	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("Alice", retrieved.DisplayName)
	s.False(retrieved.IsGuest)

	// Registered players do not expire
	s.Equal(time.Duration(0), s.mini.TTL(playerKey("player-1")))
}

func (s *StorageSuite) TestGuestPlayerExpires() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "guest-1", IsGuest: true}))
	s.Equal(time.Hour, s.mini.TTL(playerKey("guest-1")))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetPlayer(s.ctx, "guest-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1"}))
	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "player-1"))

	_, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestRegisteredPlayerByUsername() {
	rp := &model.RegisteredPlayer{
		PlayerID:     "player-1",
		Username:     "alice",
		PasswordHash: "hash",
	}
	s.Require().NoError(s.storage.SaveRegisteredPlayer(s.ctx, rp))

	s.True(s.mini.Exists(usernameIndexKey("alice")))

	byName, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), byName.PlayerID)
	s.Equal("hash", byName.PasswordHash)

	_, err = s.storage.GetRegisteredPlayerByUsername(s.ctx, "bob")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	board := model.MustParseBoard(
		"R B Y",
		"G R B",
		"R G R",
	)
	game := model.NewGameState("game-1", "player-1", board, 60)
	game.Score = 12
	game.Wiggled = &model.Bounds{MinX: 0, MinY: 0, MaxX: 2, MaxY: 1}

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	s.Equal(2*time.Hour, s.mini.TTL(gameKey("game-1")))

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(12, retrieved.Score)
	s.Equal(board.Rows(), retrieved.Board.Rows())
	s.Require().NotNil(retrieved.Wiggled)
	s.Equal(*game.Wiggled, *retrieved.Wiggled)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestCorruptGameIsAnError() {
	s.Require().NoError(s.mini.Set(gameKey("game-1"), "{not json"))

	_, err := s.storage.GetGame(s.ctx, "game-1")
	s.Error(err)
	s.NotErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	board := model.MustParseBoard("R R", "R R")
	s.Require().NoError(s.storage.SaveGame(s.ctx, model.NewGameState("game-1", "player-1", board, 60)))
	s.Require().NoError(s.storage.DeleteGame(s.ctx, "game-1"))

	_, err := s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Round summary tests

func (s *StorageSuite) TestRoundSummariesNewestFirstAndCapped() {
	for i := 1; i <= 5; i++ {
		s.Require().NoError(s.storage.SaveRoundSummary(s.ctx, &model.RoundSummary{
			GameID:   model.GameID("game-" + string(rune('0'+i))),
			PlayerID: "player-1",
			Score:    i,
		}))
	}

	all, err := s.storage.GetRoundSummaries(s.ctx, "player-1", 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(5, all[0].Score)
	s.Equal(3, all[2].Score)

	limited, err := s.storage.GetRoundSummaries(s.ctx, "player-1", 1)
	s.Require().NoError(err)
	s.Require().Len(limited, 1)
	s.Equal(model.GameID("game-5"), limited[0].GameID)
}

func (s *StorageSuite) TestRoundSummariesSkipInvalidEntries() {
	s.Require().NoError(s.storage.SaveRoundSummary(s.ctx, &model.RoundSummary{GameID: "good", PlayerID: "player-1"}))
	_, err := s.mini.Lpush(summariesKey("player-1"), "garbage")
	s.Require().NoError(err)

	summaries, err := s.storage.GetRoundSummaries(s.ctx, "player-1", 0)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(model.GameID("good"), summaries[0].GameID)
}
