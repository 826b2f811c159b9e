package picker

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
)

func TestFolderFromString(t *testing.T) {
	dir := t.TempDir()
	raw := storage.NewFileURI(dir).String()

	folder := FolderFromString(raw)
	if assert.NotNil(t, folder) {
		assert.Equal(t, dir, folder.Path())
	}

	assert.Nil(t, FolderFromString(""))
	assert.Nil(t, FolderFromString(storage.NewFileURI(filepath.Join(dir, "gone")).String()))
}
