package lsp_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solidstream/solid/lsp"
)

// TestSquareBad_BreaksRectangleContract shows the substitution failure.
func TestSquareBad_BreaksRectangleContract(t *testing.T) {
	assert.True(t, lsp.HoldsRectangleContract(&lsp.RectangleBad{}))
	assert.False(t, lsp.HoldsRectangleContract(&lsp.SquareBad{}))

	var r lsp.Resizable = &lsp.SquareBad{}
	r.SetWidth(5)
	r.SetHeight(10)
	assert.Equal(t, 100.0, r.Area())
}

// TestSquareBad_SettersKeepSidesEqual checks both setters.
func TestSquareBad_SettersKeepSidesEqual(t *testing.T) {
	s := &lsp.SquareBad{}
	s.SetHeight(3)
	assert.Equal(t, 9.0, s.Area())
	s.SetWidth(4)
	assert.Equal(t, 16.0, s.Area())
}

// TestShapes covers construction, validation and area sums.
func TestShapes(t *testing.T) {
	sq, err := lsp.NewSquare(5)
	require.NoError(t, err)
	assert.Equal(t, 25.0, sq.Area())

	rect, err := lsp.NewRectangle(5, 10)
	require.NoError(t, err)
	assert.Equal(t, 50.0, rect.Area())

	assert.Equal(t, 75.0, lsp.TotalArea(sq, rect))
	assert.Zero(t, lsp.TotalArea())

	_, err = lsp.NewSquare(-1)
	assert.ErrorIs(t, err, lsp.ErrNegativeSide)
	_, err = lsp.NewRectangle(1, -1)
	assert.ErrorIs(t, err, lsp.ErrNegativeSide)
}

// TestShapes_RejectNaN refuses NaN sides, which compare false against zero.
func TestShapes_RejectNaN(t *testing.T) {
	nan := math.NaN()

	_, err := lsp.NewSquare(nan)
	assert.ErrorIs(t, err, lsp.ErrInvalidSide)

	_, err = lsp.NewRectangle(nan, 1)
	assert.ErrorIs(t, err, lsp.ErrInvalidSide)
	_, err = lsp.NewRectangle(1, nan)
	assert.ErrorIs(t, err, lsp.ErrInvalidSide)

	_, err = lsp.NewRectangle(nan, -1)
	assert.ErrorIs(t, err, lsp.ErrInvalidSide)
	assert.ErrorIs(t, err, lsp.ErrNegativeSide)
}

// TestDemo checks the two printed areas.
func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, lsp.Demo(&buf))
	assert.Equal(t, "100\n25\n", buf.String())
}
