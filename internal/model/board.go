package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MinBoardSize is the smallest board that can hold a combination
const MinBoardSize = 2

// Ball is a single cell of the board. Its position never changes; only the color does.
type Ball struct {
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Color Color `json:"color"`
}

// Coordinate returns the ball's position
func (b Ball) Coordinate() Coordinate {
	return Coordinate{X: b.X, Y: b.Y}
}

// Board is a square grid of balls stored as a flat arena indexed by (x, y)
type Board struct {
	size  int
	balls []Ball
}

// NewBoard allocates a size×size board with every color unset.
// A size below MinBoardSize is a programmer error and panics.
func NewBoard(size int) *Board {
	if size < MinBoardSize {
		panic(fmt.Sprintf("board size %d is below minimum %d", size, MinBoardSize))
	}
	balls := make([]Ball, size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			balls[x*size+y] = Ball{X: x, Y: y}
		}
	}
	return &Board{size: size, balls: balls}
}

// ParseBoard builds a board from a literal layout. The first row given is the
// top of the board and the last one is row 0. Whitespace between letters is ignored.
func ParseBoard(rows ...string) (*Board, error) {
	size := len(rows)
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: %d rows", ErrInvalidBoardSize, size)
	}

	b := NewBoard(size)
	for i, row := range rows {
		letters := strings.Join(strings.Fields(row), "")
		if len(letters) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, i, len(letters), size)
		}
		y := size - 1 - i
		for x, letter := range letters {
			c, err := ParseColor(string(letter))
			if err != nil {
				return nil, err
			}
			b.balls[x*size+y].Color = c
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed layouts; it panics on error
func MustParseBoard(rows ...string) *Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// Size returns the board dimension
func (b *Board) Size() int {
	return b.size
}

// InBounds returns true if the coordinate lies on the board
func (b *Board) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

func (b *Board) index(x, y int) int {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		panic(fmt.Sprintf("ball (%d,%d) outside %dx%d board", x, y, b.size, b.size))
	}
	return x*b.size + y
}

// Ball returns the ball at (x, y). Indexing outside the board panics.
func (b *Board) Ball(x, y int) Ball {
	return b.balls[b.index(x, y)]
}

// ColorAt returns the color at (x, y)
func (b *Board) ColorAt(x, y int) Color {
	return b.balls[b.index(x, y)].Color
}

// SetColor changes the color at (x, y)
func (b *Board) SetColor(x, y int, c Color) {
	b.balls[b.index(x, y)].Color = c
}

// Balls returns a copy of every ball, x-major
func (b *Board) Balls() []Ball {
	result := make([]Ball, len(b.balls))
	copy(result, b.balls)
	return result
}

// IsFilled returns true if every ball has a color
func (b *Board) IsFilled() bool {
	for _, ball := range b.balls {
		if !ball.Color.IsSet() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	balls := make([]Ball, len(b.balls))
	copy(balls, b.balls)
	return &Board{size: b.size, balls: balls}
}

// Rows returns the board as layout strings, top row first
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	for y := b.size - 1; y >= 0; y-- {
		letters := make([]string, b.size)
		for x := 0; x < b.size; x++ {
			letters[x] = string(b.ColorAt(x, y).Letter())
		}
		rows[b.size-1-y] = strings.Join(letters, " ")
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

type boardJSON struct {
	Size int      `json:"size"`
	Rows []string `json:"rows"`
}

// MarshalJSON encodes the board as its layout rows
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{Size: b.size, Rows: b.Rows()})
}

// UnmarshalJSON decodes a board written by MarshalJSON
func (b *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseBoard(raw.Rows...)
	if err != nil {
		return err
	}
	if parsed.size != raw.Size {
		return fmt.Errorf("%w: size %d does not match %d rows", ErrInvalidLayout, raw.Size, parsed.size)
	}
	*b = *parsed
	return nil
}
