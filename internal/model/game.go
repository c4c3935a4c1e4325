package model

import "time"

// GameID uniquely identifies a round of play
type GameID string

// Phase is the lifecycle stage of a round
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseCountdown  Phase = "countdown"
	PhasePlaying    Phase = "playing"
	PhaseTimedOut   Phase = "timed_out"
)

// GameState is one round of the puzzle: score, clock and the board being played
type GameState struct {
	ID       GameID   `json:"id"`
	PlayerID PlayerID `json:"player_id"`

	Score         int     `json:"score"`
	ElapsedTime   float64 `json:"elapsed_time"`   // seconds
	RemainingTime float64 `json:"remaining_time"` // seconds
	Board         *Board  `json:"board"`

	CountdownStarted  bool `json:"countdown_started"`
	CountdownFinished bool `json:"countdown_finished"`
	CheatSeen         bool `json:"cheat_seen"`
	Playing           bool `json:"playing"`
	TimedOut          bool `json:"timed_out"`

	// Wiggled is the hint currently shown to the player, nil when none
	Wiggled *Bounds `json:"wiggled,omitempty"`

	Selections int `json:"selections"`
	Perfects   int `json:"perfects"`

	LastTickAt time.Time `json:"last_tick_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewGameState creates a round that has not started yet
func NewGameState(id GameID, playerID PlayerID, board *Board, roundDuration float64) *GameState {
	return &GameState{
		ID:            id,
		PlayerID:      playerID,
		Board:         board,
		RemainingTime: roundDuration,
	}
}

// Phase derives the lifecycle stage from the round flags
func (g *GameState) Phase() Phase {
	switch {
	case g.TimedOut:
		return PhaseTimedOut
	case g.Playing:
		return PhasePlaying
	case g.CountdownStarted:
		return PhaseCountdown
	default:
		return PhaseNotStarted
	}
}

// AddScore adds points to the score
func (g *GameState) AddScore(points int) {
	g.Score += points
}

// AddTime extends the remaining time by dt seconds
func (g *GameState) AddTime(dt float64) {
	g.RemainingTime += dt
}

// Tick advances the round clock by dt seconds while playing.
// Returns true if this tick ran the clock out.
func (g *GameState) Tick(dt float64) bool {
	if !g.Playing || g.TimedOut || dt <= 0 {
		return false
	}
	g.ElapsedTime += dt
	g.RemainingTime -= dt
	if g.RemainingTime <= 0 {
		g.RemainingTime = 0
		g.TimeOut()
		return true
	}
	return false
}

// StartCountdown moves a fresh round into the countdown phase
func (g *GameState) StartCountdown() {
	g.CountdownStarted = true
}

// FinishCountdown marks the countdown as complete
func (g *GameState) FinishCountdown() {
	g.CountdownStarted = true
	g.CountdownFinished = true
}

// StartPlaying starts the round once the countdown is done
func (g *GameState) StartPlaying() error {
	if g.TimedOut {
		return ErrRoundTimedOut
	}
	if !g.CountdownFinished {
		return ErrCountdownNotDone
	}
	g.Playing = true
	return nil
}

// TimeOut ends the round; the board is frozen from here on
func (g *GameState) TimeOut() {
	g.Playing = false
	g.TimedOut = true
}

// ClearHint drops the cached hint and the cheat flag
func (g *GameState) ClearHint() {
	g.Wiggled = nil
	g.CheatSeen = false
}

// Reset returns every field to its initial value with the given board
func (g *GameState) Reset(board *Board, roundDuration float64) {
	g.Score = 0
	g.ElapsedTime = 0
	g.RemainingTime = roundDuration
	g.Board = board
	g.CountdownStarted = false
	g.CountdownFinished = false
	g.CheatSeen = false
	g.Playing = false
	g.TimedOut = false
	g.Wiggled = nil
	g.Selections = 0
	g.Perfects = 0
	g.LastTickAt = time.Time{}
}

// Clone returns a deep copy of the round
func (g *GameState) Clone() *GameState {
	clone := *g
	if g.Board != nil {
		clone.Board = g.Board.Clone()
	}
	if g.Wiggled != nil {
		w := *g.Wiggled
		clone.Wiggled = &w
	}
	return &clone
}

// ScoreResult is the outcome of scoring one confirmed selection
type ScoreResult struct {
	Bounds          Bounds  `json:"bounds"`
	Base            int     `json:"base"`
	Points          int     `json:"points"`
	ComboMultiplier float64 `json:"combo_multiplier"`
	PossibleCount   int     `json:"possible_count"`
	WasBest         bool    `json:"was_best"`
	Perfect         bool    `json:"perfect"`
}

// SelectionResult reports what happened to a submitted selection
type SelectionResult struct {
	Accepted   bool         `json:"accepted"`
	Score      *ScoreResult `json:"score,omitempty"`
	TimeBonus  float64      `json:"time_bonus"`
	Reshuffled bool         `json:"reshuffled"`
}

// RoundSummary is a lightweight record of a finished round
type RoundSummary struct {
	GameID      GameID    `json:"game_id"`
	PlayerID    PlayerID  `json:"player_id"`
	Score       int       `json:"score"`
	ElapsedTime float64   `json:"elapsed_time"`
	Selections  int       `json:"selections"`
	Perfects    int       `json:"perfects"`
	BoardSize   int       `json:"board_size"`
	CompletedAt time.Time `json:"completed_at"`
}

// Summary builds the record kept once a round has finished
func (g *GameState) Summary(completedAt time.Time) RoundSummary {
	size := 0
	if g.Board != nil {
		size = g.Board.Size()
	}
	return RoundSummary{
		GameID:      g.ID,
		PlayerID:    g.PlayerID,
		Score:       g.Score,
		ElapsedTime: g.ElapsedTime,
		Selections:  g.Selections,
		Perfects:    g.Perfects,
		BoardSize:   size,
		CompletedAt: completedAt,
	}
}
