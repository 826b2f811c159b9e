// Package pager provides a page-swiping image viewer that shows one image at
// a time and moves to the neighbouring image on a horizontal swipe.
package pager

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/alexballas/thumbnailview/internal/imageslot"
)

// DefaultSwipeThreshold is the horizontal travel, in pixels, that turns a drag
// into a page change. Narrow pagers use a quarter of their width instead.
const DefaultSwipeThreshold float32 = 50

// Source supplies the pages of a Pager.
type Source interface {
	Count() int

	// Image fetches the full image for page index. The callback may run on
	// any goroutine.
	Image(index int, callback func(image.Image))
}

const (
	pagePrevious = iota
	pageCurrent
	pageNext
)

// Pager shows the images of a Source one page at a time.
type Pager struct {
	widget.BaseWidget

	// OnChanged is called when the user swipes or steps to another page.
	// SetIndex does not call it.
	OnChanged func(index int)

	source Source
	index  int
	offset float32

	pages [3]*imageslot.Slot
}

// NewPager creates a pager over source, which may be nil, showing page 0.
func NewPager(source Source) *Pager {
	p := &Pager{source: source}
	for i := range p.pages {
		p.pages[i] = imageslot.New()
	}
	p.ExtendBaseWidget(p)
	p.load()
	return p
}

// CreateRenderer is a private method to Fyne which links this widget to its renderer.
func (p *Pager) CreateRenderer() fyne.WidgetRenderer {
	return &pagerRenderer{p: p}
}

// Index returns the page being shown.
func (p *Pager) Index() int {
	return p.index
}

// SetIndex shows page index. Pages outside the source are ignored.
func (p *Pager) SetIndex(index int) {
	if index == p.index || index < 0 || index >= p.count() {
		return
	}
	p.index = index
	p.offset = 0
	p.load()
	p.Refresh()
}

// SetSource replaces the pages and returns to the first one.
func (p *Pager) SetSource(source Source) {
	p.source = source
	p.index = 0
	p.Reload()
}

// Reload fetches every visible page again, keeping the current page when it
// still exists.
func (p *Pager) Reload() {
	for _, page := range p.pages {
		page.Reset()
	}
	if n := p.count(); p.index >= n {
		p.index = max(n-1, 0)
	}
	p.offset = 0
	p.load()
	p.Refresh()
}

// Next steps to the following page and reports whether there was one.
func (p *Pager) Next() bool {
	return p.step(1)
}

// Previous steps to the preceding page and reports whether there was one.
func (p *Pager) Previous() bool {
	return p.step(-1)
}

// Dragged slides the page with the pointer. The first and last pages do not
// slide past their outer edge.
func (p *Pager) Dragged(e *fyne.DragEvent) {
	p.offset += e.Dragged.DX

	width := p.Size().Width
	p.offset = max(min(p.offset, width), -width)
	if p.offset > 0 && p.index == 0 {
		p.offset = 0
	}
	if p.offset < 0 && p.index >= p.count()-1 {
		p.offset = 0
	}
	p.Refresh()
}

// DragEnd settles on a page: the neighbour when the swipe went far enough,
// otherwise the current one.
func (p *Pager) DragEnd() {
	offset := p.offset
	p.offset = 0

	threshold := p.swipeThreshold()
	switch {
	case offset <= -threshold:
		if p.step(1) {
			return
		}
	case offset >= threshold:
		if p.step(-1) {
			return
		}
	}
	p.Refresh()
}

func (p *Pager) swipeThreshold() float32 {
	quarter := p.Size().Width / 4
	if quarter > 0 && quarter < DefaultSwipeThreshold {
		return quarter
	}
	return DefaultSwipeThreshold
}

func (p *Pager) step(delta int) bool {
	next := p.index + delta
	if next < 0 || next >= p.count() {
		return false
	}

	// Rotate the holders so the neighbour that is already loaded becomes
	// the current page.
	if delta > 0 {
		p.pages[0], p.pages[1], p.pages[2] = p.pages[1], p.pages[2], p.pages[0]
	} else {
		p.pages[0], p.pages[1], p.pages[2] = p.pages[2], p.pages[0], p.pages[1]
	}
	p.index = next
	p.offset = 0
	p.load()
	p.Refresh()

	if p.OnChanged != nil {
		p.OnChanged(next)
	}
	return true
}

func (p *Pager) count() int {
	if p.source == nil {
		return 0
	}
	return p.source.Count()
}

// load points the three holders at the previous, current and next page.
func (p *Pager) load() {
	n := p.count()
	for i, page := range p.pages {
		index := p.index + i - pageCurrent
		if index < 0 || index >= n {
			page.Reset()
			continue
		}
		page.Load(index, fyne.Size{}, p.fetch(index))
	}
}

func (p *Pager) fetch(index int) imageslot.Fetch {
	source := p.source
	return func(callback func(image.Image)) {
		source.Image(index, callback)
	}
}

var _ fyne.Draggable = (*Pager)(nil)

type pagerRenderer struct {
	p *Pager
}

// Layout squeezes the current page aside to reveal the neighbour being
// swiped in, so nothing is drawn outside the pager.
func (r *pagerRenderer) Layout(size fyne.Size) {
	offset := r.p.offset
	prev, cur, next := r.p.pages[pagePrevious].Image, r.p.pages[pageCurrent].Image, r.p.pages[pageNext].Image

	cur.Move(fyne.NewPos(max(offset, 0), 0))
	cur.Resize(fyne.NewSize(size.Width-abs32(offset), size.Height))

	prev.Hide()
	next.Hide()
	switch {
	case offset > 0:
		prev.Move(fyne.NewPos(0, 0))
		prev.Resize(fyne.NewSize(offset, size.Height))
		prev.Show()
	case offset < 0:
		next.Move(fyne.NewPos(size.Width+offset, 0))
		next.Resize(fyne.NewSize(-offset, size.Height))
		next.Show()
	}
}

func (r *pagerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *pagerRenderer) Refresh() {
	r.Layout(r.p.Size())
	for _, page := range r.p.pages {
		page.Image.Refresh()
	}
}

func (r *pagerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{
		r.p.pages[pagePrevious].Image,
		r.p.pages[pageCurrent].Image,
		r.p.pages[pageNext].Image,
	}
}

func (r *pagerRenderer) Destroy() {}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
