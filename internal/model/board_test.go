package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardPositions(t *testing.T) {
	b := NewBoard(3)

	assert.Equal(t, 3, b.Size())
	assert.False(t, b.IsFilled())
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			ball := b.Ball(x, y)
			assert.Equal(t, Coordinate{X: x, Y: y}, ball.Coordinate())
			assert.Equal(t, ColorNone, ball.Color)
		}
	}
}

func TestNewBoardRejectsTinySizes(t *testing.T) {
	assert.Panics(t, func() { NewBoard(1) })
	assert.Panics(t, func() { NewBoard(0) })
}

func TestParseBoardTopRowFirst(t *testing.T) {
	b, err := ParseBoard(
		"R B",
		"G Y",
	)
	require.NoError(t, err)

	assert.Equal(t, ColorRed, b.ColorAt(0, 1))
	assert.Equal(t, ColorBlue, b.ColorAt(1, 1))
	assert.Equal(t, ColorGreen, b.ColorAt(0, 0))
	assert.Equal(t, ColorYellow, b.ColorAt(1, 0))
	assert.True(t, b.IsFilled())
	assert.Equal(t, []string{"R B", "G Y"}, b.Rows())
}

func TestParseBoardIgnoresSpacing(t *testing.T) {
	spaced, err := ParseBoard("R  B", "G Y")
	require.NoError(t, err)
	compact, err := ParseBoard("RB", "GY")
	require.NoError(t, err)

	assert.Equal(t, spaced.Rows(), compact.Rows())
}

func TestParseBoardErrors(t *testing.T) {
	_, err := ParseBoard("R")
	assert.ErrorIs(t, err, ErrInvalidBoardSize)

	_, err = ParseBoard("R B", "G")
	assert.ErrorIs(t, err, ErrInvalidLayout)

	_, err = ParseBoard("R X", "G Y")
	assert.ErrorIs(t, err, ErrInvalidColor)

	assert.Panics(t, func() { MustParseBoard("R") })
}

func TestBoardIndexingOutsidePanics(t *testing.T) {
	b := NewBoard(2)

	assert.Panics(t, func() { b.ColorAt(2, 0) })
	assert.Panics(t, func() { b.SetColor(0, -1, ColorRed) })
	assert.False(t, b.InBounds(Coordinate{X: 2, Y: 0}))
	assert.True(t, b.InBounds(Coordinate{X: 1, Y: 1}))
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := MustParseBoard("R R", "R R")
	clone := b.Clone()

	clone.SetColor(0, 0, ColorBlue)

	assert.Equal(t, ColorRed, b.ColorAt(0, 0))
	assert.Equal(t, ColorBlue, clone.ColorAt(0, 0))
}

func TestBoardJSON(t *testing.T) {
	b := MustParseBoard(
		"R B Y",
		"G G B",
		"Y R R",
	)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"size":3,"rows":["R B Y","G G B","Y R R"]}`, string(data))

	var decoded Board
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, b.Rows(), decoded.Rows())

	err = json.Unmarshal([]byte(`{"size":4,"rows":["R B","G Y"]}`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestColorParsing(t *testing.T) {
	for _, c := range Colors() {
		byName, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, byName)

		byLetter, err := ParseColor(string(c.Letter()))
		require.NoError(t, err)
		assert.Equal(t, c, byLetter)
		assert.True(t, c.IsSet())
	}

	assert.False(t, ColorNone.IsSet())
	assert.Equal(t, 4, ColorCount())

	_, err := ParseColor("purple")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestColorsReturnsCopy(t *testing.T) {
	colors := Colors()
	colors[0] = ColorNone

	assert.Equal(t, ColorRed, Colors()[0])
}
