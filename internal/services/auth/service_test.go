package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/cornergame/internal/dependencies/mocks"
	"github.com/mcoot/cornergame/internal/dependencies/random"
	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/storage/memory"
	"github.com/mcoot/cornergame/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandomWithFallback(random.NewSeeded(5))

	cfg := DefaultConfig()
	cfg.BcryptCost = bcrypt.MinCost
	s.service = New(s.storage, s.clock, s.random, cfg, testutil.NopLogger())
	s.ctx = context.Background()
}

// Guest tests

func (s *ServiceSuite) TestCreateGuestPlayer() {
	s.random.QueueString("GUESTID", "TOKEN")

	session, err := s.service.CreateGuestPlayer(s.ctx, "Alice")
	s.Require().NoError(err)

	s.Equal(model.PlayerID("p_GUESTID"), session.Player.ID)
	s.Equal("sess_TOKEN", session.Token)
	s.True(session.Player.IsGuest)
	s.Equal(s.clock.Now().Add(24*time.Hour), session.ExpiresAt)

	stored, err := s.storage.GetPlayer(s.ctx, session.Player.ID)
	s.Require().NoError(err)
	s.Equal("Alice", stored.DisplayName)
}

// Register tests

func (s *ServiceSuite) TestRegisterPlayer() {
	session, err := s.service.RegisterPlayer(s.ctx, "  alice ", "secret123", "")
	s.Require().NoError(err)

	s.False(session.Player.IsGuest)
	s.Equal("alice", session.Player.DisplayName)

	rp, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(session.Player.ID, rp.PlayerID)
	s.NotEqual("secret123", rp.PasswordHash)
	s.True(strings.HasPrefix(rp.PasswordHash, "$2"))
}

func (s *ServiceSuite) TestRegisterValidation() {
	_, err := s.service.RegisterPlayer(s.ctx, "   ", "secret123", "")
	s.ErrorIs(err, ErrInvalidUsername)

	_, err = s.service.RegisterPlayer(s.ctx, "alice", "12345", "")
	s.ErrorIs(err, ErrPasswordTooShort)

	_, err = s.service.RegisterPlayer(s.ctx, "alice", "secret123", "Alice")
	s.Require().NoError(err)

	_, err = s.service.RegisterPlayer(s.ctx, "alice", "other-pass", "Alice Again")
	s.ErrorIs(err, ErrUsernameExists)
}

// Login tests

func (s *ServiceSuite) TestLogin() {
	registered, err := s.service.RegisterPlayer(s.ctx, "alice", "secret123", "Alice")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "alice", "secret123")
	s.Require().NoError(err)
	s.Equal(registered.Player.ID, session.Player.ID)
	s.NotEqual(registered.Token, session.Token)

	_, err = s.service.Login(s.ctx, "alice", "wrong-password")
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.service.Login(s.ctx, "nobody", "secret123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Session tests

func (s *ServiceSuite) TestValidateSession() {
	session, err := s.service.CreateGuestPlayer(s.ctx, "Alice")
	s.Require().NoError(err)

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.Player.ID, validated.Player.ID)

	_, err = s.service.ValidateSession("sess_unknown")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestExpiredSessionIsDropped() {
	session, err := s.service.CreateGuestPlayer(s.ctx, "Alice")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)

	// Rewinding does not bring it back
	s.clock.Advance(-25 * time.Hour)
	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSession() {
	session, err := s.service.CreateGuestPlayer(s.ctx, "Alice")
	s.Require().NoError(err)

	s.service.InvalidateSession(session.Token)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	_, err := s.service.CreateGuestPlayer(s.ctx, "Old")
	s.Require().NoError(err)
	s.clock.Advance(12 * time.Hour)
	fresh, err := s.service.CreateGuestPlayer(s.ctx, "New")
	s.Require().NoError(err)

	s.clock.Advance(13 * time.Hour)

	s.Equal(1, s.service.CleanExpiredSessions())
	s.Equal(0, s.service.CleanExpiredSessions())

	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
