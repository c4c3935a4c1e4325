package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededBoardsIgnoreLogins(t *testing.T) {
	ctx := context.Background()

	quiet, err := New(Config{Seed: 7})
	require.NoError(t, err)
	busy, err := New(Config{Seed: 7})
	require.NoError(t, err)

	quietSession, err := quiet.AuthService.CreateGuestPlayer(ctx, "Quiet")
	require.NoError(t, err)

	// Extra logins and sessions must not draw from the board stream
	_, err = busy.AuthService.CreateGuestPlayer(ctx, "Other")
	require.NoError(t, err)
	busySession, err := busy.AuthService.CreateGuestPlayer(ctx, "Busy")
	require.NoError(t, err)

	quietGame, err := quiet.GameController.CreateGame(ctx, quietSession.Player.ID, 6)
	require.NoError(t, err)
	busyGame, err := busy.GameController.CreateGame(ctx, busySession.Player.ID, 6)
	require.NoError(t, err)

	assert.Equal(t, quietGame.Board.Rows(), busyGame.Board.Rows())
}

func TestSeededAppsIssueDistinctTokens(t *testing.T) {
	ctx := context.Background()

	first, err := New(Config{Seed: 42})
	require.NoError(t, err)
	second, err := New(Config{Seed: 42})
	require.NoError(t, err)

	a, err := first.AuthService.CreateGuestPlayer(ctx, "A")
	require.NoError(t, err)
	b, err := second.AuthService.CreateGuestPlayer(ctx, "B")
	require.NoError(t, err)

	assert.NotEqual(t, a.Token, b.Token)
	assert.NotEqual(t, a.Player.ID, b.Player.ID)
	assert.NotSame(t, first.Random, first.BoardRandom)
}
