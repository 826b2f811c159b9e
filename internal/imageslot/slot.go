// Package imageslot provides recyclable image holders whose asynchronous
// loads can be superseded. Every load is tagged with a request token and a
// result is applied only while its token is still the slot's current one, so
// a late image never overwrites whatever the slot shows now.
package imageslot

import (
	"image"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Fetch requests an image and delivers it to the callback, from any goroutine,
// zero or more times.
type Fetch func(callback func(image.Image))

var tokens atomic.Uint64

func nextToken() uint64 {
	return tokens.Add(1)
}

// Slot is an image holder. Its methods must be called on the UI goroutine.
type Slot struct {
	Image *canvas.Image

	index  int
	size   fyne.Size
	token  uint64
	loaded bool
}

// New creates an empty slot whose image keeps its aspect ratio.
func New() *Slot {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	return &Slot{Image: img, index: -1}
}

// Index returns the item the slot was last asked to show, or -1.
func (s *Slot) Index() int {
	return s.index
}

// Load points the slot at index and starts fetching its image. Asking again
// for the item and size already requested does nothing.
func (s *Slot) Load(index int, size fyne.Size, fetch Fetch) {
	if s.loaded && s.index == index && s.size == size {
		return
	}
	if s.index != index {
		s.Image.Image = nil
		s.Image.Refresh()
	}

	s.index = index
	s.size = size
	s.loaded = true
	token := nextToken()
	s.token = token

	if fetch == nil {
		return
	}
	fetch(func(img image.Image) {
		fyne.Do(func() {
			s.apply(token, img)
		})
	})
}

// apply shows img if it answers the slot's current request.
func (s *Slot) apply(token uint64, img image.Image) bool {
	if token != s.token || img == nil {
		return false
	}
	s.Image.Image = img
	s.Image.Refresh()
	return true
}

// Reset drops any pending request and clears the image.
func (s *Slot) Reset() {
	s.token = nextToken()
	s.index = -1
	s.size = fyne.Size{}
	s.loaded = false
	s.Image.Image = nil
	s.Image.Refresh()
}
