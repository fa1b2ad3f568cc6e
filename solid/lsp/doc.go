// Package lsp contrasts a Liskov-substitution violation with its fix.
//
// The violation: SquareBad embeds RectangleBad and forces both sides equal
// on every setter. Code written against Resizable expects that setting
// width 5 and height 10 yields area 50; a SquareBad yields 100.
//
// The fix: Shape exposes only Area. Rectangle and Square are independent
// values, each constructed whole, so no caller can break a square's invariant.
//
// Errors:
//
//   - ErrNegativeSide: a side length below zero.
//   - ErrInvalidSide: a side length that is NaN.
package lsp
