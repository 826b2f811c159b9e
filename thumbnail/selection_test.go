package thumbnail

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSelection lays out n items in the 300x50 strip used throughout these
// tests and records every change notification.
func newTestSelection(n int) (*Selection, *[]int) {
	var events []int
	s := NewSelection()
	s.OnChanged = func(index int) {
		events = append(events, index)
	}
	cfg := stripConfig()
	s.SetLayout(n, cfg, ComputeLayout(n, cfg))
	return s, &events
}

func TestSelection_IndexForPointerRoundTrip(t *testing.T) {
	for _, n := range []int{1, 3, 8, 50, 500} {
		s, _ := newTestSelection(n)
		for _, slot := range s.Slots() {
			assert.Equal(t, slot.Index, s.IndexForPointer(slot.Frame.Center()), "n=%d", n)
		}
	}
}

func TestSelection_IndexForPointerClamps(t *testing.T) {
	s, _ := newTestSelection(50)

	assert.Equal(t, 0, s.IndexForPointer(fyne.NewPos(-500, 25)))
	assert.Equal(t, 49, s.IndexForPointer(fyne.NewPos(5000, 25)))

	empty, _ := newTestSelection(0)
	assert.Equal(t, 0, empty.IndexForPointer(fyne.NewPos(100, 25)))
}

func TestSelection_IndexForPointerInterpolates(t *testing.T) {
	s, _ := newTestSelection(50)
	slots := s.Slots()
	require.Equal(t, 21, slots[3].Index)
	require.Equal(t, 28, slots[4].Index)

	// 34px between the slots covers 7 items, one every 4.86px.
	pointer := slots[3].Frame.Center().Add(fyne.NewDelta(10, 0))
	assert.Equal(t, 23, s.IndexForPointer(pointer))

	pointer = slots[4].Frame.Center().Subtract(fyne.NewDelta(1, 0))
	assert.Equal(t, 27, s.IndexForPointer(pointer))
}

func TestSelection_SelectIsIdempotent(t *testing.T) {
	s, events := newTestSelection(50)

	assert.True(t, s.Select(7))
	assert.False(t, s.Select(7))
	assert.Equal(t, []int{7}, *events)
	assert.Equal(t, 7, s.Selected())
}

func TestSelection_SelectRejectsOutOfRange(t *testing.T) {
	s, events := newTestSelection(50)

	assert.False(t, s.Select(50))
	assert.False(t, s.Select(-1))
	assert.Empty(t, *events)
	assert.Equal(t, 0, s.Selected())
}

func TestSelection_OverlayRect(t *testing.T) {
	s, _ := newTestSelection(50)
	slots := s.Slots()

	assert.Equal(t, fyne.NewSquareSize(42), s.OverlaySize())

	for _, slot := range slots {
		rect := s.OverlayRect(slot.Index)
		assert.InDelta(t, 32*1.3, rect.Size.Width, 0.5)
		assert.InDelta(t, 32*1.3, rect.Size.Height, 0.5)
		assert.Equal(t, slot.Frame.Center(), rect.Center(), "overlay centred on slot %d", slot.Index)
	}

	// Item 24 sits three sevenths of the way from slot 3 to slot 4.
	rect := s.OverlayRect(24)
	want := slots[3].Frame.MinX() + 3*34.0/7 - 5
	assert.InDelta(t, want, rect.MinX(), 0.001)
	assert.Equal(t, float32(4), rect.MinY())
}

func TestSelection_OverlayRectEmpty(t *testing.T) {
	s, _ := newTestSelection(0)
	assert.Equal(t, Rect{}, s.OverlayRect(0))
}

func TestSelection_TapSelectsSlot(t *testing.T) {
	s, events := newTestSelection(50)
	slots := s.Slots()

	require.True(t, s.Begin(slots[3].Frame.Center()))
	assert.True(t, s.Tracking())
	assert.Equal(t, 21, s.Selected())
	s.End()
	assert.False(t, s.Tracking())

	// Tapping the selected slot again raises nothing.
	require.True(t, s.Begin(slots[3].Frame.Center()))
	s.End()
	assert.Equal(t, []int{21}, *events)
}

func TestSelection_BeginMissRejects(t *testing.T) {
	s, events := newTestSelection(50)

	assert.False(t, s.Begin(fyne.NewPos(5, 25)))
	assert.False(t, s.Tracking())
	assert.False(t, s.Continue(fyne.NewPos(200, 25)))
	assert.Empty(t, *events)

	// The gap between two thumbnails is forgiving by the spacing.
	slots := s.Slots()
	gap := fyne.NewPos(slots[0].Frame.MaxX()+1, 25)
	assert.True(t, s.Begin(gap))
	assert.Equal(t, 0, s.Selected())
}

func TestSelection_BeginWithoutSpacing(t *testing.T) {
	var events []int
	s := NewSelection()
	s.OnChanged = func(index int) {
		events = append(events, index)
	}
	cfg := stripConfig()
	cfg.ItemSpacing = 0
	s.SetLayout(50, cfg, ComputeLayout(50, cfg))
	slots := s.Slots()
	require.Equal(t, slots[2].Frame.MaxX(), slots[3].Frame.MinX())

	// The shared edge of two touching thumbnails belongs to the left one.
	require.True(t, s.Begin(fyne.NewPos(slots[2].Frame.MaxX(), 25)))
	s.End()
	assert.Equal(t, slots[2].Index, s.Selected())

	require.True(t, s.Begin(fyne.NewPos(slots[3].Frame.MinX()+1, 25)))
	s.End()
	assert.Equal(t, slots[3].Index, s.Selected())

	assert.False(t, s.Begin(fyne.NewPos(slots[0].Frame.MinX()-1, 25)))
	assert.Equal(t, []int{slots[2].Index, slots[3].Index}, events)
}

func TestSelection_DragScrubs(t *testing.T) {
	s, events := newTestSelection(50)
	slots := s.Slots()
	start := slots[3].Frame.Center()

	require.True(t, s.Begin(start))

	// One pixel is not enough to reach the next item.
	assert.True(t, s.Continue(start.Add(fyne.NewDelta(1, 0))))
	assert.Equal(t, 21, s.Selected())

	assert.True(t, s.Continue(start.Add(fyne.NewDelta(5, 0))))
	assert.Equal(t, 22, s.Selected())

	assert.True(t, s.Continue(start.Add(fyne.NewDelta(34, 3))))
	assert.Equal(t, 28, s.Selected())

	assert.True(t, s.Continue(start.Add(fyne.NewDelta(-1000, 0))))
	assert.Equal(t, 0, s.Selected())

	assert.True(t, s.Continue(start.Add(fyne.NewDelta(1000, 0))))
	assert.Equal(t, 49, s.Selected())

	s.Cancel()
	assert.False(t, s.Continue(start))
	assert.Equal(t, []int{21, 22, 28, 0, 49}, *events)
}

func TestSelection_DragFromOffCentreKeepsAnchor(t *testing.T) {
	s, _ := newTestSelection(50)
	slots := s.Slots()

	// Grabbing the right edge of slot 3 and not moving keeps slot 3.
	grab := fyne.NewPos(slots[3].Frame.MaxX()-1, 25)
	require.True(t, s.Begin(grab))
	s.Continue(grab)
	assert.Equal(t, 21, s.Selected())
}

func TestSelection_EmptyLayout(t *testing.T) {
	s, events := newTestSelection(0)

	assert.False(t, s.Begin(fyne.NewPos(150, 25)))
	assert.False(t, s.Select(0))
	s.End()
	s.Cancel()
	assert.Empty(t, *events)
}

func TestSelection_SingleItem(t *testing.T) {
	s, events := newTestSelection(1)
	slots := s.Slots()
	require.Len(t, slots, 1)

	assert.False(t, s.Select(0))
	assert.Empty(t, *events)
	assert.Equal(t, slots[0].Frame.Center(), s.OverlayRect(0).Center())
}

func TestSelection_SetLayoutClamps(t *testing.T) {
	s, events := newTestSelection(50)
	require.True(t, s.Select(49))

	cfg := stripConfig()
	assert.True(t, s.SetLayout(10, cfg, ComputeLayout(10, cfg)))
	assert.Equal(t, 9, s.Selected())

	assert.False(t, s.SetLayout(20, cfg, ComputeLayout(20, cfg)))
	assert.Equal(t, 9, s.Selected())

	assert.True(t, s.SetLayout(0, cfg, nil))
	assert.Equal(t, 0, s.Selected())

	// Clamping is reported to the caller, not through OnChanged.
	assert.Equal(t, []int{49}, *events)
}
