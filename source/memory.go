package source

import (
	"image"

	"fyne.io/fyne/v2"
)

// Memory serves images held in memory. Callbacks run synchronously.
type Memory struct {
	images []image.Image
}

// NewMemory creates a source over images, in order.
func NewMemory(images ...image.Image) *Memory {
	return &Memory{images: images}
}

func (m *Memory) ItemCount() int { return len(m.images) }
func (m *Memory) Count() int     { return len(m.images) }

// Thumbnail hands back the stored image; the view scales it.
func (m *Memory) Thumbnail(index int, _ fyne.Size, callback func(image.Image)) {
	m.Image(index, callback)
}

// Image hands back the stored image. Unknown indices are ignored.
func (m *Memory) Image(index int, callback func(image.Image)) {
	if index < 0 || index >= len(m.images) {
		return
	}
	callback(m.images[index])
}
