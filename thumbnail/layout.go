package thumbnail

import (
	"math"

	"fyne.io/fyne/v2"
)

const (
	defaultItemSize    = 32
	defaultItemSpacing = 2
	defaultInset       = 12
)

// Insets pads the strip inside the viewport.
type Insets struct {
	Top, Left, Bottom, Right float32
}

// LayoutConfig describes one layout pass. Changing any field invalidates
// the slots computed from the previous value.
type LayoutConfig struct {
	ItemSize     fyne.Size
	ItemSpacing  float32
	Insets       Insets
	ViewportSize fyne.Size
}

// DefaultLayoutConfig returns the strip defaults for a viewport of the given size.
func DefaultLayoutConfig(viewport fyne.Size) LayoutConfig {
	return LayoutConfig{
		ItemSize:     fyne.NewSquareSize(defaultItemSize),
		ItemSpacing:  defaultItemSpacing,
		Insets:       Insets{Left: defaultInset, Right: defaultInset},
		ViewportSize: viewport,
	}
}

// Slot is one rendered thumbnail position. Index is the logical item it shows.
type Slot struct {
	Index int
	Frame Rect
}

// ComputeLayout places as many items as fit in the viewport, centred, and
// spreads the n logical indices evenly over them. The first slot always shows
// item 0 and, when more than one slot fits, the last shows item n-1.
// It returns nil when nothing can be placed.
func ComputeLayout(n int, cfg LayoutConfig) []Slot {
	if n <= 0 {
		return nil
	}

	step := float64(cfg.ItemSize.Width) + float64(cfg.ItemSpacing)
	if step <= 0 {
		return nil
	}

	available := float64(cfg.ViewportSize.Width - cfg.Insets.Left - cfg.Insets.Right)
	maxSlots := int(math.Floor((available + float64(cfg.ItemSpacing)) / step))
	count := min(maxSlots, n)
	if count < 1 {
		return nil
	}

	contentWidth := float64(count)*float64(cfg.ItemSize.Width) + float64(count-1)*float64(cfg.ItemSpacing)
	contentWidth = math.Min(contentWidth, available)

	innerHeight := float64(cfg.ViewportSize.Height - cfg.Insets.Top - cfg.Insets.Bottom)
	px := float64(cfg.Insets.Left) + (available-contentWidth)*0.5
	py := float64(cfg.Insets.Top) + (innerHeight-float64(cfg.ItemSize.Height))*0.5

	slots := make([]Slot, count)
	for i := range slots {
		slots[i] = Slot{
			Index: logicalIndex(i, count, n),
			Frame: Rect{
				Position: fyne.NewPos(float32(px+float64(i)*step), float32(py)),
				Size:     cfg.ItemSize,
			},
		}
	}
	return slots
}

// logicalIndex maps visual slot i of count onto [0, n).
func logicalIndex(i, count, n int) int {
	if count <= 1 || n <= 1 {
		return 0
	}
	return int(math.Round(float64(i) * float64(n-1) / float64(count-1)))
}

// ItemBounds returns the area covered by the slots, from the first frame to
// the last one.
func ItemBounds(slots []Slot) Rect {
	if len(slots) == 0 {
		return Rect{}
	}
	return slots[0].Frame.Union(slots[len(slots)-1].Frame)
}
