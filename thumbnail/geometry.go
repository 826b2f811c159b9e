package thumbnail

import "fyne.io/fyne/v2"

// Rect is an axis aligned rectangle in the view's local coordinate space.
type Rect struct {
	Position fyne.Position
	Size     fyne.Size
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{Position: fyne.NewPos(x, y), Size: fyne.NewSize(w, h)}
}

func (r Rect) MinX() float32 { return r.Position.X }
func (r Rect) MinY() float32 { return r.Position.Y }
func (r Rect) MaxX() float32 { return r.Position.X + r.Size.Width }
func (r Rect) MaxY() float32 { return r.Position.Y + r.Size.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() fyne.Position {
	return fyne.NewPos(r.Position.X+r.Size.Width/2, r.Position.Y+r.Size.Height/2)
}

// Intersects reports whether the two rectangles share interior area.
// A zero sized rectangle intersects any rectangle that strictly contains it.
func (r Rect) Intersects(o Rect) bool {
	return overlaps(r.MinX(), r.MaxX(), o.MinX(), o.MaxX()) &&
		overlaps(r.MinY(), r.MaxY(), o.MinY(), o.MaxY())
}

// overlaps checks two closed intervals for a non-degenerate overlap, allowing
// a zero length interval that lies strictly inside the other one.
func overlaps(a1, a2, b1, b2 float32) bool {
	if a1 == a2 {
		return b1 < a1 && a1 < b2
	}
	if b1 == b2 {
		return a1 < b1 && b1 < a2
	}
	return a1 < b2 && b1 < a2
}

// Contains reports whether p lies inside r or on its edge.
func (r Rect) Contains(p fyne.Position) bool {
	return r.MinX() <= p.X && p.X <= r.MaxX() && r.MinY() <= p.Y && p.Y <= r.MaxY()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x1 := min(r.MinX(), o.MinX())
	y1 := min(r.MinY(), o.MinY())
	x2 := max(r.MaxX(), o.MaxX())
	y2 := max(r.MaxY(), o.MaxY())
	return NewRect(x1, y1, x2-x1, y2-y1)
}
