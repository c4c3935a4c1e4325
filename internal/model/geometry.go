package model

import "fmt"

// Coordinate identifies a cell on the board. Y grows upwards: row 0 is the bottom.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds is an inclusive axis-aligned region of the board
type Bounds struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// NewBounds returns the bounds spanned by two opposite corners, in any order
func NewBounds(a, b Coordinate) Bounds {
	return Bounds{
		MinX: min(a.X, b.X),
		MinY: min(a.Y, b.Y),
		MaxX: max(a.X, b.X),
		MaxY: max(a.Y, b.Y),
	}
}

// FullBounds returns the bounds covering an entire board of the given size
func FullBounds(size int) Bounds {
	return Bounds{MinX: 0, MinY: 0, MaxX: size - 1, MaxY: size - 1}
}

// Rows returns the number of rows covered
func (b Bounds) Rows() int {
	return b.MaxY - b.MinY + 1
}

// Cols returns the number of columns covered
func (b Bounds) Cols() int {
	return b.MaxX - b.MinX + 1
}

// Area returns rows × cols
func (b Bounds) Area() int {
	return b.Rows() * b.Cols()
}

// Equal returns true if all four bounds match
func (b Bounds) Equal(other Bounds) bool {
	return b == other
}

// Contains returns true if the coordinate lies inside the bounds
func (b Bounds) Contains(c Coordinate) bool {
	return c.X >= b.MinX && c.X <= b.MaxX && c.Y >= b.MinY && c.Y <= b.MaxY
}

// BottomLeft returns the (MinX, MinY) corner
func (b Bounds) BottomLeft() Coordinate {
	return Coordinate{X: b.MinX, Y: b.MinY}
}

// TopRight returns the (MaxX, MaxY) corner
func (b Bounds) TopRight() Coordinate {
	return Coordinate{X: b.MaxX, Y: b.MaxY}
}

// Corners returns the four corner coordinates
func (b Bounds) Corners() []Coordinate {
	return []Coordinate{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MinX, Y: b.MaxY},
		{X: b.MaxX, Y: b.MaxY},
	}
}

func (b Bounds) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}
