package source

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"github.com/FyshOS/fancyfs"
)

// ListDirectory returns the images in dir sorted by name. Hidden files are
// skipped and a subfolder contributes its background image, if it has one.
func ListDirectory(dir fyne.ListableURI) ([]fyne.URI, error) {
	children, err := dir.List()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var images []fyne.URI
	for _, u := range children {
		if isHidden(u) {
			continue
		}
		if isDir, _ := storage.CanList(u); isDir {
			if background := folderBackground(u); background != nil {
				images = append(images, background)
			}
			continue
		}
		if IsSupported(u) {
			images = append(images, u)
		}
	}

	slices.SortStableFunc(images, func(a, b fyne.URI) int {
		return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})
	return images, nil
}

func folderBackground(folder fyne.URI) fyne.URI {
	details, err := fancyfs.DetailsForFolder(folder)
	if err != nil || details == nil || details.BackgroundURI == nil {
		return nil
	}
	if !IsSupported(details.BackgroundURI) {
		return nil
	}
	return details.BackgroundURI
}

func isHidden(u fyne.URI) bool {
	name := filepath.Base(u.Path())
	return name == "" || name[0] == '.'
}
