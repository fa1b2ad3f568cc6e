package lsp

// RectangleBad is a mutable rectangle.
type RectangleBad struct {
	width, height float64
}

// SetWidth changes the width only.
func (r *RectangleBad) SetWidth(w float64) { r.width = w }

// SetHeight changes the height only.
func (r *RectangleBad) SetHeight(h float64) { r.height = h }

// Area returns width × height.
func (r *RectangleBad) Area() float64 { return r.width * r.height }

// SquareBad reuses RectangleBad but keeps both sides equal, which breaks
// the Resizable contract.
type SquareBad struct {
	RectangleBad
}

// SetWidth sets both sides to w.
func (s *SquareBad) SetWidth(w float64) {
	s.width, s.height = w, w
}

// SetHeight sets both sides to h.
func (s *SquareBad) SetHeight(h float64) {
	s.width, s.height = h, h
}

// HoldsRectangleContract resizes r to 5×10 and reports whether the area is
// the 50 a rectangle promises.
func HoldsRectangleContract(r Resizable) bool {
	r.SetWidth(5)
	r.SetHeight(10)

	return r.Area() == 50
}
