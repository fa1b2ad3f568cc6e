package lsp

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Rectangle is an immutable rectangle.
type Rectangle struct {
	width, height float64
}

// checkSide validates one side length.
func checkSide(v float64) error {
	switch {
	case math.IsNaN(v):
		return ErrInvalidSide
	case v < 0:
		return ErrNegativeSide
	}

	return nil
}

// NewRectangle returns a w×h rectangle, or ErrInvalidSide / ErrNegativeSide.
func NewRectangle(w, h float64) (Rectangle, error) {
	if err := errors.Join(checkSide(w), checkSide(h)); err != nil {
		return Rectangle{}, err
	}

	return Rectangle{width: w, height: h}, nil
}

// Area returns width × height.
func (r Rectangle) Area() float64 { return r.width * r.height }

// Square is an immutable square.
type Square struct {
	side float64
}

// NewSquare returns a square with the given side, or ErrInvalidSide / ErrNegativeSide.
func NewSquare(side float64) (Square, error) {
	if err := checkSide(side); err != nil {
		return Square{}, err
	}

	return Square{side: side}, nil
}

// Area returns side².
func (s Square) Area() float64 { return s.side * s.side }

// TotalArea sums the areas of shapes.
func TotalArea(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}

	return total
}

func formatArea(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// Demo prints the area of a SquareBad resized to 5×10 through the
// rectangle contract, then the area of a proper 5×5 Square.
func Demo(w io.Writer) error {
	var bad Resizable = &SquareBad{}
	bad.SetWidth(5)
	bad.SetHeight(10)
	if _, err := fmt.Fprintln(w, formatArea(bad.Area())); err != nil {
		return err
	}

	sq, err := NewSquare(5)
	if err != nil {
		return err
	}
	var shape Shape = sq
	_, err = fmt.Fprintln(w, formatArea(shape.Area()))

	return err
}
