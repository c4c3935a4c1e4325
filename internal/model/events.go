package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventRoundCreated      EventType = "round_created"
	EventCountdownFinished EventType = "countdown_finished"
	EventSelectionAccepted EventType = "selection_accepted"
	EventSelectionRejected EventType = "selection_rejected"
	EventBoardReshuffled   EventType = "board_reshuffled"
	EventHintShown         EventType = "hint_shown"
	EventRoundTimedOut     EventType = "round_timed_out"
	EventRoundReset        EventType = "round_reset"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	GameID    GameID    `json:"game_id"`
	PlayerID  PlayerID  `json:"player_id"`
	Payload   any       `json:"payload,omitempty"`
}

// SelectionAcceptedPayload contains data for accepted selections
type SelectionAcceptedPayload struct {
	Score      ScoreResult `json:"score"`
	TotalScore int         `json:"total_score"`
	Remaining  float64     `json:"remaining_time"`
	Reshuffled bool        `json:"reshuffled"`
}

// SelectionRejectedPayload contains the cells of a rejected selection
type SelectionRejectedPayload struct {
	Cells []Coordinate `json:"cells"`
}

// BoardReshuffledPayload explains why the board was reshuffled
type BoardReshuffledPayload struct {
	Reason string `json:"reason"`
}

// HintShownPayload carries the hinted combination
type HintShownPayload struct {
	Bounds Bounds `json:"bounds"`
}

// RoundTimedOutPayload contains the final round statistics
type RoundTimedOutPayload struct {
	Summary RoundSummary `json:"summary"`
}
