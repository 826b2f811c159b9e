package thumbnail

import (
	"image"

	"fyne.io/fyne/v2"
)

// DataSource supplies the items shown by a View.
type DataSource interface {
	// ItemCount returns the total number of logical items.
	ItemCount() int

	// Thumbnail fetches the image for item index, ideally rendered at size.
	// The callback may run on any goroutine, any number of times; the view
	// only honours results for requests it has not since replaced.
	Thumbnail(index int, size fyne.Size, callback func(image.Image))
}
