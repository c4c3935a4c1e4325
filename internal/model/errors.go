package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Board errors
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidLayout    = errors.New("invalid board layout")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidPosition  = errors.New("invalid board position")

	// Game errors
	ErrGameNotFound       = errors.New("game not found")
	ErrNotGameOwner       = errors.New("player does not own this game")
	ErrCountdownNotDone   = errors.New("countdown has not finished")
	ErrRoundNotPlaying    = errors.New("round is not being played")
	ErrRoundTimedOut      = errors.New("round has timed out")
	ErrNoCombinationFound = errors.New("board has no combination")
)
