package response

import (
	"time"

	"github.com/mcoot/cornergame/internal/model"
	"github.com/mcoot/cornergame/internal/services/auth"
	"github.com/mcoot/cornergame/internal/services/bot"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player    `json:"player"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}

// Board is the color grid. Rows are listed top row first, one letter per ball.
type Board struct {
	Size int      `json:"size"`
	Rows []string `json:"rows"`
}

// BoardFromModel converts model.Board to response Board
func BoardFromModel(b *model.Board) Board {
	return Board{
		Size: b.Size(),
		Rows: b.Rows(),
	}
}

// GameState represents a round in API responses
type GameState struct {
	ID            string        `json:"id"`
	PlayerID      string        `json:"player_id"`
	Phase         string        `json:"phase"`
	Score         int           `json:"score"`
	ElapsedTime   float64       `json:"elapsed_time"`
	RemainingTime float64       `json:"remaining_time"`
	Selections    int           `json:"selections"`
	Perfects      int           `json:"perfects"`
	CheatSeen     bool          `json:"cheat_seen"`
	Wiggled       *model.Bounds `json:"wiggled,omitempty"`
	Board         Board         `json:"board"`
}

// GameStateFromModel converts model.GameState to response GameState
func GameStateFromModel(g *model.GameState) GameState {
	return GameState{
		ID:            string(g.ID),
		PlayerID:      string(g.PlayerID),
		Phase:         string(g.Phase()),
		Score:         g.Score,
		ElapsedTime:   g.ElapsedTime,
		RemainingTime: g.RemainingTime,
		Selections:    g.Selections,
		Perfects:      g.Perfects,
		CheatSeen:     g.CheatSeen,
		Wiggled:       g.Wiggled,
		Board:         BoardFromModel(g.Board),
	}
}

// Score is the breakdown of one scored selection
type Score struct {
	Bounds          model.Bounds `json:"bounds"`
	Base            int          `json:"base"`
	Points          int          `json:"points"`
	ComboMultiplier float64      `json:"combo_multiplier"`
	PossibleCount   int          `json:"possible_count"`
	WasBest         bool         `json:"was_best"`
	Perfect         bool         `json:"perfect"`
}

// ScoreFromModel converts model.ScoreResult
func ScoreFromModel(s model.ScoreResult) Score {
	return Score{
		Bounds:          s.Bounds,
		Base:            s.Base,
		Points:          s.Points,
		ComboMultiplier: s.ComboMultiplier,
		PossibleCount:   s.PossibleCount,
		WasBest:         s.WasBest,
		Perfect:         s.Perfect,
	}
}

// SelectResponse is the response after playing four cells
type SelectResponse struct {
	Accepted   bool      `json:"accepted"`
	Score      *Score    `json:"score,omitempty"`
	TimeBonus  float64   `json:"time_bonus"`
	Reshuffled bool      `json:"reshuffled"`
	Game       GameState `json:"game"`
}

// SelectResponseFromModel combines a selection outcome with the round after it
func SelectResponseFromModel(r *model.SelectionResult, g *model.GameState) SelectResponse {
	resp := SelectResponse{
		Accepted:   r.Accepted,
		TimeBonus:  r.TimeBonus,
		Reshuffled: r.Reshuffled,
		Game:       GameStateFromModel(g),
	}
	if r.Score != nil {
		s := ScoreFromModel(*r.Score)
		resp.Score = &s
	}
	return resp
}

// AutoplayAction is one move a bot made
type AutoplayAction struct {
	Type   string        `json:"type"`
	Bounds *model.Bounds `json:"bounds,omitempty"`
	Score  *Score        `json:"score,omitempty"`
}

// AutoplayResponse lists the bot's moves and the round after them
type AutoplayResponse struct {
	Actions []AutoplayAction `json:"actions"`
	Game    GameState        `json:"game"`
}

// AutoplayResponseFromActions converts bot actions for the API
func AutoplayResponseFromActions(actions []bot.Action, g *model.GameState) AutoplayResponse {
	resp := AutoplayResponse{
		Actions: make([]AutoplayAction, 0, len(actions)),
		Game:    GameStateFromModel(g),
	}
	for _, a := range actions {
		action := AutoplayAction{Type: string(a.Type), Bounds: a.Bounds}
		if a.Score != nil {
			s := ScoreFromModel(*a.Score)
			action.Score = &s
		}
		resp.Actions = append(resp.Actions, action)
	}
	return resp
}

// HintResponse carries the combination being hinted
type HintResponse struct {
	Bounds model.Bounds `json:"bounds"`
}

// RoundSummary represents a finished round
type RoundSummary struct {
	GameID      string    `json:"game_id"`
	Score       int       `json:"score"`
	ElapsedTime float64   `json:"elapsed_time"`
	Selections  int       `json:"selections"`
	Perfects    int       `json:"perfects"`
	BoardSize   int       `json:"board_size"`
	CompletedAt time.Time `json:"completed_at"`
}

// RoundSummaryFromModel converts model.RoundSummary
func RoundSummaryFromModel(s model.RoundSummary) RoundSummary {
	return RoundSummary{
		GameID:      string(s.GameID),
		Score:       s.Score,
		ElapsedTime: s.ElapsedTime,
		Selections:  s.Selections,
		Perfects:    s.Perfects,
		BoardSize:   s.BoardSize,
		CompletedAt: s.CompletedAt,
	}
}

// RoundsResponse lists a player's finished rounds, newest first
type RoundsResponse struct {
	Rounds []RoundSummary `json:"rounds"`
}

// RoundsResponseFromModel converts a list of summaries
func RoundsResponseFromModel(summaries []model.RoundSummary) RoundsResponse {
	rounds := make([]RoundSummary, len(summaries))
	for i, s := range summaries {
		rounds[i] = RoundSummaryFromModel(s)
	}
	return RoundsResponse{Rounds: rounds}
}
