package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case GameState:
		o.printGameState(v)
	case SelectResult:
		o.printSelectResult(v)
	case HintResult:
		o.printHint(v)
	case RoundsResult:
		o.printRounds(v)
	case AutoplayResult:
		o.printAutoplay(v)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player    `json:"player"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Bounds response type
type Bounds struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

func (b Bounds) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// Board response type; rows are top row first
type Board struct {
	Size int      `json:"size"`
	Rows []string `json:"rows"`
}

// GameState response type
type GameState struct {
	ID            string  `json:"id"`
	PlayerID      string  `json:"player_id"`
	Phase         string  `json:"phase"`
	Score         int     `json:"score"`
	ElapsedTime   float64 `json:"elapsed_time"`
	RemainingTime float64 `json:"remaining_time"`
	Selections    int     `json:"selections"`
	Perfects      int     `json:"perfects"`
	CheatSeen     bool    `json:"cheat_seen"`
	Wiggled       *Bounds `json:"wiggled,omitempty"`
	Board         Board   `json:"board"`
}

// Score response type
type Score struct {
	Bounds          Bounds  `json:"bounds"`
	Base            int     `json:"base"`
	Points          int     `json:"points"`
	ComboMultiplier float64 `json:"combo_multiplier"`
	PossibleCount   int     `json:"possible_count"`
	WasBest         bool    `json:"was_best"`
	Perfect         bool    `json:"perfect"`
}

// SelectResult response type
type SelectResult struct {
	Accepted   bool      `json:"accepted"`
	Score      *Score    `json:"score,omitempty"`
	TimeBonus  float64   `json:"time_bonus"`
	Reshuffled bool      `json:"reshuffled"`
	Game       GameState `json:"game"`
}

// AutoplayAction response type
type AutoplayAction struct {
	Type   string  `json:"type"`
	Bounds *Bounds `json:"bounds,omitempty"`
	Score  *Score  `json:"score,omitempty"`
}

// AutoplayResult response type
type AutoplayResult struct {
	Actions []AutoplayAction `json:"actions"`
	Game    GameState        `json:"game"`
}

// HintResult response type
type HintResult struct {
	Bounds Bounds `json:"bounds"`
}

// RoundSummary response type
type RoundSummary struct {
	GameID      string    `json:"game_id"`
	Score       int       `json:"score"`
	ElapsedTime float64   `json:"elapsed_time"`
	Selections  int       `json:"selections"`
	Perfects    int       `json:"perfects"`
	BoardSize   int       `json:"board_size"`
	CompletedAt time.Time `json:"completed_at"`
}

// RoundsResult response type
type RoundsResult struct {
	Rounds []RoundSummary `json:"rounds"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Fprintf(o.w, "Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Fprintf(o.w, "Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Fprintf(o.w, "Token: %s\n", a.SessionToken)
}

func (o *Output) printGameState(g GameState) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Phase: %s\n", g.Phase)
	fmt.Fprintf(o.w, "Score: %d\n", g.Score)
	fmt.Fprintf(o.w, "Time: %.1fs left, %.1fs elapsed\n", g.RemainingTime, g.ElapsedTime)
	fmt.Fprintf(o.w, "Selections: %d (perfect: %d)\n", g.Selections, g.Perfects)
	if g.Wiggled != nil {
		fmt.Fprintf(o.w, "Hint: %s\n", g.Wiggled)
	}
	fmt.Fprintln(o.w)
	o.printBoard(g.Board)
}

// printBoard draws the grid with y labels on the left, highest row first
func (o *Output) printBoard(b Board) {
	if b.Size == 0 || len(b.Rows) == 0 {
		return
	}

	border := "   +" + strings.Repeat("--", b.Size) + "-+"
	fmt.Fprintln(o.w, border)
	for i, row := range b.Rows {
		fmt.Fprintf(o.w, "%2d | %s |\n", b.Size-1-i, row)
	}
	fmt.Fprintln(o.w, border)

	fmt.Fprint(o.w, "     ")
	for x := 0; x < b.Size; x++ {
		fmt.Fprintf(o.w, "%d ", x%10)
	}
	fmt.Fprintln(o.w)
}

func (o *Output) printSelectResult(r SelectResult) {
	if !r.Accepted {
		fmt.Fprintln(o.w, "Not a combination")
	} else if r.Score != nil {
		fmt.Fprintf(o.w, "Combination %s: +%d points (base %d", r.Score.Bounds, r.Score.Points, r.Score.Base)
		if r.Score.WasBest && r.Score.ComboMultiplier > 1 {
			fmt.Fprintf(o.w, ", best of %d x%.1f", r.Score.PossibleCount, r.Score.ComboMultiplier)
		}
		if r.Score.Perfect {
			fmt.Fprint(o.w, ", perfect")
		}
		fmt.Fprintf(o.w, "), +%.1fs\n", r.TimeBonus)
		if r.Reshuffled {
			fmt.Fprintln(o.w, "Board reshuffled")
		}
	}
	fmt.Fprintln(o.w)
	o.printGameState(r.Game)
}

func (o *Output) printHint(h HintResult) {
	fmt.Fprintf(o.w, "Try %s\n", h.Bounds)
}

func (o *Output) printRounds(r RoundsResult) {
	if len(r.Rounds) == 0 {
		fmt.Fprintln(o.w, "No finished rounds")
		return
	}
	for _, s := range r.Rounds {
		fmt.Fprintf(o.w, "%s  %s  score %d  %d selections (%d perfect)  %dx%d  %.1fs\n",
			s.CompletedAt.Format("2006-01-02 15:04"), s.GameID, s.Score, s.Selections, s.Perfects,
			s.BoardSize, s.BoardSize, s.ElapsedTime)
	}
}

func (o *Output) printAutoplay(r AutoplayResult) {
	for i, a := range r.Actions {
		switch {
		case a.Type == "select" && a.Bounds != nil && a.Score != nil:
			fmt.Fprintf(o.w, "%d. select %s: +%d points\n", i+1, a.Bounds, a.Score.Points)
		default:
			fmt.Fprintf(o.w, "%d. %s\n", i+1, a.Type)
		}
	}
	fmt.Fprintln(o.w)
	o.printGameState(r.Game)
}
