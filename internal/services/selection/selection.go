// Package selection decides whether four chosen balls form a legal move.
package selection

import (
	"fmt"

	"github.com/mcoot/cornergame/internal/model"
)

// Size is the number of balls in a selection
const Size = 4

// Selection is a transient group of four balls submitted by the player
type Selection struct {
	balls [Size]model.Ball
}

// New creates a selection. Passing anything other than four balls is a programmer error and panics.
func New(balls []model.Ball) *Selection {
	if len(balls) != Size {
		panic(fmt.Sprintf("selection needs %d balls, got %d", Size, len(balls)))
	}
	s := &Selection{}
	copy(s.balls[:], balls)
	return s
}

// CheckSameColor returns true if all four balls share one assigned color
func (s *Selection) CheckSameColor() bool {
	color := s.balls[0].Color
	if !color.IsSet() {
		return false
	}
	for _, b := range s.balls[1:] {
		if b.Color != color {
			return false
		}
	}
	return true
}

// CheckSquare returns true if the balls sit on the four corners of one
// axis-aligned rectangle: four distinct positions spanning exactly two
// columns and two rows.
func (s *Selection) CheckSquare() bool {
	xs := make(map[int]struct{}, 2)
	ys := make(map[int]struct{}, 2)
	positions := make(map[model.Coordinate]struct{}, Size)
	for _, b := range s.balls {
		xs[b.X] = struct{}{}
		ys[b.Y] = struct{}{}
		positions[b.Coordinate()] = struct{}{}
	}
	return len(xs) == 2 && len(ys) == 2 && len(positions) == Size
}

// Valid returns true if both the color and the shape checks pass
func (s *Selection) Valid() bool {
	return s.CheckSameColor() && s.CheckSquare()
}

// Bounds returns the region spanned by the four balls
func (s *Selection) Bounds() model.Bounds {
	b := model.Bounds{
		MinX: s.balls[0].X, MaxX: s.balls[0].X,
		MinY: s.balls[0].Y, MaxY: s.balls[0].Y,
	}
	for _, ball := range s.balls[1:] {
		b.MinX = min(b.MinX, ball.X)
		b.MaxX = max(b.MaxX, ball.X)
		b.MinY = min(b.MinY, ball.Y)
		b.MaxY = max(b.MaxY, ball.Y)
	}
	return b
}

// Balls returns the selected balls
func (s *Selection) Balls() []model.Ball {
	result := make([]model.Ball, Size)
	copy(result, s.balls[:])
	return result
}
