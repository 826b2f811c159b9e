package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestItemSize(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetItemSize(); got != DefaultItemSize {
		t.Errorf("Expected default item size %d, got %d", DefaultItemSize, got)
	}

	settings.SetItemSize(48)
	if got := settings.GetItemSize(); got != 48 {
		t.Errorf("Expected item size 48, got %d", got)
	}

	settings.SetItemSize(2)
	if settings.GetItemSize() != MinItemSize {
		t.Error("Item size should be clamped to the minimum")
	}

	settings.SetItemSize(1000)
	if settings.GetItemSize() != MaxItemSize {
		t.Error("Item size should be clamped to the maximum")
	}
}

func TestItemSpacing(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetItemSpacing(); got != DefaultItemSpacing {
		t.Errorf("Expected default spacing %d, got %d", DefaultItemSpacing, got)
	}

	settings.SetItemSpacing(0)
	if got := settings.GetItemSpacing(); got != 0 {
		t.Errorf("Zero spacing should be kept, got %d", got)
	}

	settings.SetItemSpacing(-4)
	if settings.GetItemSpacing() != 0 {
		t.Error("Negative spacing should be clamped to 0")
	}

	settings.SetItemSpacing(99)
	if settings.GetItemSpacing() != MaxItemSpacing {
		t.Error("Spacing should be clamped to the maximum")
	}
}

func TestLastFolder(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetLastFolder() != "" {
		t.Error("Last folder should start empty")
	}

	settings.SetLastFolder("file:///home/user/Pictures")
	if got := settings.GetLastFolder(); got != "file:///home/user/Pictures" {
		t.Errorf("Expected stored folder, got %q", got)
	}
}

func TestCacheLimits(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetCacheSizeMB() != DefaultCacheSizeMB {
		t.Error("Expected default cache size")
	}
	if settings.GetCacheMaxFiles() != DefaultCacheMaxFiles {
		t.Error("Expected default cache file limit")
	}

	settings.SetCacheSizeMB(1)
	if settings.GetCacheSizeMB() != MinCacheSizeMB {
		t.Error("Cache size should be clamped to the minimum")
	}

	settings.SetCacheMaxFiles(500)
	if got := settings.GetCacheMaxFiles(); got != 500 {
		t.Errorf("Expected 500 cache files, got %d", got)
	}
}
