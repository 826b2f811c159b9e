package thumbnail

import (
	"math"

	"fyne.io/fyne/v2"
)

// selectionScale is how much larger the selection overlay is than an item.
const selectionScale = 1.3

type trackingState int

const (
	stateIdle trackingState = iota
	stateTracking
)

// gestureSession lives from pointer down to pointer up. Drag movement is
// applied to the origin of the frame that was hit so the selection follows
// the finger rather than jumping to wherever the pointer sits.
type gestureSession struct {
	anchorOrigin  fyne.Position
	anchorPointer fyne.Position
}

// Selection tracks the selected logical index of a thumbnail strip and maps
// pointer gestures and overlay geometry onto the current slots.
// It is not safe for concurrent use; drive it from the UI goroutine.
type Selection struct {
	// OnChanged is called after the selected index changed.
	OnChanged func(index int)

	slots    []Slot
	count    int
	itemSize fyne.Size
	spacing  float32

	selected int

	state   trackingState
	session gestureSession
}

// NewSelection returns a selection at index 0 with no layout.
func NewSelection() *Selection {
	return &Selection{}
}

// SetLayout installs slots computed for n items with cfg. A selection that no
// longer fits in [0, n) is clamped and true is returned so the caller can
// announce the change once it has finished its own layout work.
func (s *Selection) SetLayout(n int, cfg LayoutConfig, slots []Slot) bool {
	s.slots = slots
	s.count = max(n, 0)
	s.itemSize = cfg.ItemSize
	s.spacing = cfg.ItemSpacing

	clamped := s.selected
	if clamped >= s.count {
		clamped = s.count - 1
	}
	if clamped < 0 {
		clamped = 0
	}
	if clamped == s.selected {
		return false
	}
	s.selected = clamped
	return true
}

// Slots returns the slots of the current layout.
func (s *Selection) Slots() []Slot {
	return s.slots
}

// Selected returns the selected logical index.
func (s *Selection) Selected() int {
	return s.selected
}

// Select sets the selected index and reports whether it changed. Indices
// outside the item range are ignored.
func (s *Selection) Select(index int) bool {
	if index < 0 || index >= s.count {
		return false
	}
	return s.update(index)
}

func (s *Selection) update(index int) bool {
	if index == s.selected {
		return false
	}
	s.selected = index
	if s.OnChanged != nil {
		s.OnChanged(index)
	}
	return true
}

// Tracking reports whether a gesture is in progress.
func (s *Selection) Tracking() bool {
	return s.state == stateTracking
}

// Begin starts a gesture at p. It fails, leaving the state untouched, when p
// is not on a thumbnail. A pointer on the shared edge of two touching
// thumbnails picks the left one.
func (s *Selection) Begin(p fyne.Position) bool {
	side := s.spacing * 2
	probe := NewRect(p.X-side/2, p.Y-side/2, side, side)

	for _, slot := range s.slots {
		if !slot.Frame.Contains(p) && !slot.Frame.Intersects(probe) {
			continue
		}
		s.update(slot.Index)
		s.state = stateTracking
		s.session = gestureSession{
			anchorOrigin:  slot.Frame.Position,
			anchorPointer: p,
		}
		return true
	}
	return false
}

// Continue moves an active gesture to p. It returns false when no gesture is
// being tracked.
func (s *Selection) Continue(p fyne.Position) bool {
	if s.state != stateTracking {
		return false
	}
	moved := p.Subtract(s.session.anchorPointer)
	probe := s.session.anchorOrigin.Add(moved)
	s.update(s.indexAtOrigin(probe.X))
	return true
}

// End finishes the active gesture, if any.
func (s *Selection) End() {
	s.state = stateIdle
	s.session = gestureSession{}
}

// Cancel abandons the active gesture, if any. The selection made so far stays.
func (s *Selection) Cancel() {
	s.End()
}

// IndexForPointer returns the logical index under a pointer at p,
// interpolating between slots. A pointer over the middle of a thumbnail maps
// to that thumbnail.
func (s *Selection) IndexForPointer(p fyne.Position) int {
	return s.indexAtOrigin(p.X - s.itemSize.Width/2)
}

// indexAtOrigin maps the x coordinate of a would-be frame origin to a
// logical index.
func (s *Selection) indexAtOrigin(x float32) int {
	if len(s.slots) == 0 {
		return 0
	}
	first, last := s.slots[0], s.slots[len(s.slots)-1]
	if x < first.Frame.MinX() {
		return first.Index
	}
	if x >= last.Frame.MinX() {
		return last.Index
	}

	// Slots are ordered by both index and position, so the neighbours of x
	// are adjacent in the slice.
	var left, right Slot
	for i, slot := range s.slots {
		if slot.Frame.MinX() <= x {
			left = slot
			continue
		}
		right = s.slots[i]
		break
	}
	if left.Frame.MinX() == x {
		return left.Index
	}

	stride := (right.Frame.MinX() - left.Frame.MinX()) / float32(right.Index-left.Index)
	return left.Index + int(math.Floor(float64((x-left.Frame.MinX())/stride)))
}

// OverlaySize is the size of the selection overlay, rounded to whole pixels.
func (s *Selection) OverlaySize() fyne.Size {
	return fyne.NewSize(
		float32(math.Round(float64(s.itemSize.Width)*selectionScale)),
		float32(math.Round(float64(s.itemSize.Height)*selectionScale)),
	)
}

// OverlayRect returns where the enlarged selection overlay sits for index.
// For an index between two slots the overlay is placed proportionally
// between them.
func (s *Selection) OverlayRect(index int) Rect {
	if len(s.slots) == 0 {
		return Rect{}
	}

	size := s.OverlaySize()
	nx := (size.Width - s.itemSize.Width) * 0.5
	ny := (size.Height - s.itemSize.Height) * 0.5

	left, right := s.slots[0], s.slots[len(s.slots)-1]
	for _, slot := range s.slots {
		if slot.Index <= index {
			left = slot
		}
		if slot.Index >= index {
			right = slot
			break
		}
	}

	x := left.Frame.MinX()
	if left.Index != right.Index && index > left.Index {
		stride := (right.Frame.MinX() - left.Frame.MinX()) / float32(right.Index-left.Index)
		x += float32(index-left.Index) * stride
	}
	return Rect{
		Position: fyne.NewPos(x-nx, left.Frame.MinY()-ny),
		Size:     size,
	}
}
