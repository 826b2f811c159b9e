//go:build !(flatpak && !windows && !android && !ios && !wasm && !js)

package picker

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func chooseFolder(parent fyne.Window, start fyne.ListableURI, callback Callback) {
	d := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
		callback(dir, err)
	}, parent)
	if start != nil {
		d.SetLocation(start)
	}
	if size := parent.Canvas().Size(); size.Width > 200 && size.Height > 200 {
		d.Resize(size.Subtract(fyne.NewSquareSize(40)))
	}
	d.Show()
}
