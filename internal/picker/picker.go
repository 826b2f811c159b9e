// Package picker asks the user for a folder of images, using the desktop
// portal inside a flatpak sandbox and the Fyne folder dialog elsewhere.
package picker

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// Callback receives the chosen folder, or nil and nil when the user cancels.
// It is always called on the UI goroutine.
type Callback func(dir fyne.ListableURI, err error)

// ChooseFolder shows a folder chooser over parent, starting in start when it
// is set and in the user's Pictures folder otherwise.
func ChooseFolder(parent fyne.Window, start fyne.ListableURI, callback Callback) {
	if start == nil {
		start = defaultFolder()
	}
	chooseFolder(parent, start, callback)
}

// FolderFromString restores a folder saved with fyne.URI.String, or returns
// nil when it no longer exists.
func FolderFromString(raw string) fyne.ListableURI {
	if raw == "" {
		return nil
	}
	uri, err := storage.ParseURI(raw)
	if err != nil {
		return nil
	}
	lister, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return lister
}

func defaultFolder() fyne.ListableURI {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	homeURI := storage.NewFileURI(home)
	if pictures, err := storage.Child(homeURI, "Pictures"); err == nil {
		if lister, err := storage.ListerForURI(pictures); err == nil {
			return lister
		}
	}
	lister, err := storage.ListerForURI(homeURI)
	if err != nil {
		return nil
	}
	return lister
}
