package thumbnail

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/alexballas/thumbnailview/internal/imageslot"
)

// View is a strip of thumbnails with an enlarged selection overlay. Tapping a
// thumbnail selects it; dragging scrubs through every logical item, including
// the ones that have no thumbnail of their own in the strip.
type View struct {
	widget.BaseWidget

	// OnChanged is called when the user or SetSelectedIndex changes the
	// selected item.
	OnChanged func(index int)

	source    DataSource
	config    LayoutConfig
	selection *Selection

	items     []*imageslot.Slot
	overlay   *imageslot.Slot
	highlight *canvas.Rectangle

	// Relayouts requested while laying out or while OnChanged runs are
	// replayed afterwards instead of recursing. So is a selection change made
	// by the handler itself.
	laying   bool
	emitting bool
	pending  bool
	queued   int
	hasQueue bool

	// pressed is set from pointer down until the gesture ends; a drag that
	// follows a press never starts a gesture of its own.
	pressed  bool
	dragging bool
}

// NewView creates a thumbnail strip showing items from source, which may be nil.
func NewView(source DataSource) *View {
	v := &View{
		source:    source,
		config:    DefaultLayoutConfig(fyne.Size{}),
		selection: NewSelection(),
		overlay:   imageslot.New(),
		highlight: canvas.NewRectangle(color.Transparent),
	}
	v.selection.OnChanged = v.selectionChanged

	v.highlight.StrokeColor = theme.Color(theme.ColorNamePrimary)
	v.highlight.StrokeWidth = 2
	v.highlight.CornerRadius = theme.InputRadiusSize()
	v.highlight.Hide()
	v.overlay.Image.Hide()

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer is a private method to Fyne which links this widget to its renderer.
func (v *View) CreateRenderer() fyne.WidgetRenderer {
	return &viewRenderer{v: v}
}

// SetDataSource replaces the item source and reloads the strip.
func (v *View) SetDataSource(source DataSource) {
	v.source = source
	v.Reload()
}

// Reload discards every loaded thumbnail and lays the strip out again,
// picking up a changed item count.
func (v *View) Reload() {
	for _, item := range v.items {
		item.Reset()
	}
	v.overlay.Reset()
	v.invalidate()
}

// ItemSize returns the size of one thumbnail.
func (v *View) ItemSize() fyne.Size {
	return v.config.ItemSize
}

// SetItemSize changes the size of one thumbnail.
func (v *View) SetItemSize(size fyne.Size) {
	if v.config.ItemSize == size {
		return
	}
	v.config.ItemSize = size
	v.invalidate()
}

// ItemSpacing returns the gap between thumbnails.
func (v *View) ItemSpacing() float32 {
	return v.config.ItemSpacing
}

// SetItemSpacing changes the gap between thumbnails. It also sets how
// forgiving taps between two thumbnails are.
func (v *View) SetItemSpacing(spacing float32) {
	if v.config.ItemSpacing == spacing {
		return
	}
	v.config.ItemSpacing = spacing
	v.invalidate()
}

// Insets returns the padding around the strip.
func (v *View) Insets() Insets {
	return v.config.Insets
}

// SetInsets changes the padding around the strip.
func (v *View) SetInsets(insets Insets) {
	if v.config.Insets == insets {
		return
	}
	v.config.Insets = insets
	v.invalidate()
}

// SelectedIndex returns the selected logical item.
func (v *View) SelectedIndex() int {
	return v.selection.Selected()
}

// SetSelectedIndex selects item index. Out of range indices are ignored.
func (v *View) SetSelectedIndex(index int) {
	v.selection.Select(index)
}

// Slots returns the thumbnails currently laid out.
func (v *View) Slots() []Slot {
	return v.selection.Slots()
}

// Resize sets a new size for the strip and lays it out again.
func (v *View) Resize(size fyne.Size) {
	if size == v.Size() {
		return
	}
	v.BaseWidget.Resize(size)
	v.invalidate()
}

func (v *View) itemCount() int {
	if v.source == nil {
		return 0
	}
	return v.source.ItemCount()
}

func (v *View) invalidate() {
	if v.laying || v.emitting {
		v.pending = true
		return
	}

	v.laying = true
	clamped := false
	for {
		v.pending = false
		if v.layout() {
			clamped = true
		}
		if !v.pending {
			break
		}
	}
	v.laying = false

	v.loadOverlay()
	v.Refresh()
	if clamped {
		v.announce(v.selection.Selected())
	}
}

// layout recomputes every slot and points the thumbnail holders at them.
// It reports whether the selection had to be clamped.
func (v *View) layout() bool {
	n := v.itemCount()
	cfg := v.config
	cfg.ViewportSize = v.Size()

	slots := ComputeLayout(n, cfg)
	clamped := v.selection.SetLayout(n, cfg, slots)

	for len(v.items) < len(slots) {
		v.items = append(v.items, imageslot.New())
	}
	for _, item := range v.items[len(slots):] {
		item.Reset()
	}
	v.items = v.items[:len(slots)]

	for i, slot := range slots {
		v.items[i].Load(slot.Index, cfg.ItemSize, v.fetch(slot.Index, cfg.ItemSize))
	}
	return clamped
}

func (v *View) fetch(index int, size fyne.Size) imageslot.Fetch {
	source := v.source
	if source == nil {
		return nil
	}
	return func(callback func(image.Image)) {
		source.Thumbnail(index, size, callback)
	}
}

func (v *View) loadOverlay() {
	if len(v.selection.Slots()) == 0 {
		v.overlay.Reset()
		return
	}
	index := v.selection.Selected()
	size := v.selection.OverlaySize()
	v.overlay.Load(index, size, v.fetch(index, size))
}

func (v *View) selectionChanged(index int) {
	v.loadOverlay()
	v.Refresh()
	v.announce(index)
}

// announce calls OnChanged. A change made from inside the handler is
// delivered once the handler returns, newest index only.
func (v *View) announce(index int) {
	if v.OnChanged == nil {
		return
	}
	if v.emitting {
		v.queued, v.hasQueue = index, true
		return
	}

	v.emitting = true
	for {
		v.OnChanged(index)
		if !v.hasQueue || v.queued == index {
			break
		}
		index = v.queued
		v.hasQueue = false
	}
	v.hasQueue = false
	v.emitting = false

	if v.pending {
		v.invalidate()
	}
}

// MouseDown starts tracking a selection on primary button press.
func (v *View) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	v.pressed = true
	v.selection.Begin(e.Position)
}

// MouseUp ends tracking unless a drag is still being delivered.
func (v *View) MouseUp(*desktop.MouseEvent) {
	v.pressed = false
	if v.dragging {
		return
	}
	v.selection.End()
}

func (v *View) TouchDown(e *mobile.TouchEvent) {
	v.pressed = true
	v.selection.Begin(e.Position)
}

func (v *View) TouchUp(*mobile.TouchEvent) {
	v.pressed = false
	if v.dragging {
		return
	}
	v.selection.End()
}

func (v *View) TouchCancel(*mobile.TouchEvent) {
	v.pressed = false
	v.selection.Cancel()
}

// Dragged scrubs the selection. A press that missed every thumbnail keeps the
// whole drag inert. Drivers that deliver a drag without a press get one try,
// at the drag's first event, to start the gesture where the drag started.
func (v *View) Dragged(e *fyne.DragEvent) {
	first := !v.dragging
	v.dragging = true
	if !v.selection.Tracking() {
		if v.pressed || !first || !v.selection.Begin(e.Position.Subtract(e.Dragged)) {
			return
		}
	}
	v.selection.Continue(e.Position)
}

func (v *View) DragEnd() {
	v.dragging = false
	v.pressed = false
	v.selection.End()
}

// Tapped selects the thumbnail under the pointer.
func (v *View) Tapped(e *fyne.PointEvent) {
	if !v.selection.Tracking() {
		v.selection.Begin(e.Position)
	}
	v.selection.End()
}

var (
	_ fyne.Draggable    = (*View)(nil)
	_ fyne.Tappable     = (*View)(nil)
	_ desktop.Mouseable = (*View)(nil)
	_ mobile.Touchable  = (*View)(nil)
)

type viewRenderer struct {
	v *View
}

func (r *viewRenderer) Layout(fyne.Size) {
	v := r.v
	slots := v.selection.Slots()
	for i, slot := range slots {
		if i >= len(v.items) {
			break
		}
		v.items[i].Image.Move(slot.Frame.Position)
		v.items[i].Image.Resize(slot.Frame.Size)
	}

	if len(slots) == 0 {
		v.highlight.Hide()
		v.overlay.Image.Hide()
		return
	}

	rect := v.selection.OverlayRect(v.selection.Selected())
	v.highlight.Move(rect.Position)
	v.highlight.Resize(rect.Size)
	v.highlight.Show()

	v.overlay.Image.Move(rect.Position)
	v.overlay.Image.Resize(rect.Size)
	v.overlay.Image.Show()
}

func (r *viewRenderer) MinSize() fyne.Size {
	cfg := r.v.config
	overlay := r.v.selection.OverlaySize()
	return fyne.NewSize(
		cfg.Insets.Left+cfg.Insets.Right+cfg.ItemSize.Width,
		cfg.Insets.Top+cfg.Insets.Bottom+max(cfg.ItemSize.Height, overlay.Height),
	)
}

func (r *viewRenderer) Refresh() {
	r.v.highlight.StrokeColor = theme.Color(theme.ColorNamePrimary)
	r.Layout(r.v.Size())
	for _, item := range r.v.items {
		item.Image.Refresh()
	}
	r.v.highlight.Refresh()
	r.v.overlay.Image.Refresh()
}

func (r *viewRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(r.v.items)+2)
	for _, item := range r.v.items {
		objs = append(objs, item.Image)
	}
	// The overlay is drawn above the strip, its frame above the image.
	objs = append(objs, r.v.overlay.Image, r.v.highlight)
	return objs
}

func (r *viewRenderer) Destroy() {}
