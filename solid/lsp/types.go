package lsp

import "errors"

// Sentinel errors for shape construction.
var (
	// ErrNegativeSide indicates a negative side length.
	ErrNegativeSide = errors.New("lsp: side length must be non-negative")

	// ErrInvalidSide indicates a side length that is not a number.
	ErrInvalidSide = errors.New("lsp: side length is NaN")
)

// Resizable is the contract RectangleBad advertises: width and height are
// independent.
type Resizable interface {
	SetWidth(w float64)
	SetHeight(h float64)
	Area() float64
}

// Shape is anything with an area.
type Shape interface {
	Area() float64
}
