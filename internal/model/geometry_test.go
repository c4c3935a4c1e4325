package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoundsNormalisesCorners(t *testing.T) {
	b := NewBounds(Coordinate{X: 4, Y: 1}, Coordinate{X: 2, Y: 3})

	assert.Equal(t, Bounds{MinX: 2, MinY: 1, MaxX: 4, MaxY: 3}, b)
	assert.Equal(t, Coordinate{X: 2, Y: 1}, b.BottomLeft())
	assert.Equal(t, Coordinate{X: 4, Y: 3}, b.TopRight())
}

func TestBoundsArea(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}

	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 3, b.Cols())
	assert.Equal(t, 9, b.Area())
	assert.Equal(t, 36, FullBounds(6).Area())
}

func TestBoundsContainsAndCorners(t *testing.T) {
	b := Bounds{MinX: 1, MinY: 1, MaxX: 3, MaxY: 2}

	assert.True(t, b.Contains(Coordinate{X: 2, Y: 2}))
	assert.False(t, b.Contains(Coordinate{X: 0, Y: 1}))
	assert.ElementsMatch(t, []Coordinate{{1, 1}, {3, 1}, {1, 2}, {3, 2}}, b.Corners())
	assert.True(t, b.Equal(Bounds{MinX: 1, MinY: 1, MaxX: 3, MaxY: 2}))
	assert.Equal(t, "(1,1)-(3,2)", b.String())
}
