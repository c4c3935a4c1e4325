package request

import "github.com/mcoot/cornergame/internal/model"

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateGameRequest is the request body for creating a round.
// A zero size uses the server default.
type CreateGameRequest struct {
	Size int `json:"size,omitempty"`
}

// AutoplayRequest is the request body for letting a bot play moves.
// Empty fields default to the greedy strategy and one move.
type AutoplayRequest struct {
	Strategy string `json:"strategy,omitempty"`
	Moves    int    `json:"moves,omitempty"`
}

// SelectRequest is the request body for playing four cells
type SelectRequest struct {
	Cells []model.Coordinate `json:"cells"`
}
