// Package config stores the gallery's preferences.
package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyItemSize      = "thumbnailview.item_size"
	KeyItemSpacing   = "thumbnailview.item_spacing"
	KeyLastFolder    = "thumbnailview.last_folder"
	KeyCacheSizeMB   = "thumbnailview.cache_size_mb"
	KeyCacheMaxFiles = "thumbnailview.cache_max_files"
)

// Default values
const (
	DefaultItemSize      = 32
	DefaultItemSpacing   = 2
	DefaultCacheSizeMB   = 200
	DefaultCacheMaxFiles = 10000
)

// Limits applied by the setters
const (
	MinItemSize    = 16
	MaxItemSize    = 128
	MaxItemSpacing = 32
	MinCacheSizeMB = 10
	MinCacheFiles  = 100
)

// Settings reads and writes the gallery's preferences.
type Settings struct {
	app fyne.App
}

// NewSettings creates a settings manager backed by app's preferences.
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetItemSize returns the edge of a strip thumbnail.
func (s *Settings) GetItemSize() int {
	return s.app.Preferences().IntWithFallback(KeyItemSize, DefaultItemSize)
}

// SetItemSize stores the thumbnail edge, clamped to the supported range.
func (s *Settings) SetItemSize(size int) {
	s.app.Preferences().SetInt(KeyItemSize, clamp(size, MinItemSize, MaxItemSize))
}

// GetItemSpacing returns the gap between strip thumbnails.
func (s *Settings) GetItemSpacing() int {
	return s.app.Preferences().IntWithFallback(KeyItemSpacing, DefaultItemSpacing)
}

// SetItemSpacing stores the thumbnail gap, clamped to the supported range.
func (s *Settings) SetItemSpacing(spacing int) {
	s.app.Preferences().SetInt(KeyItemSpacing, clamp(spacing, 0, MaxItemSpacing))
}

// GetLastFolder returns the URI of the last opened folder, or "".
func (s *Settings) GetLastFolder() string {
	return s.app.Preferences().String(KeyLastFolder)
}

func (s *Settings) SetLastFolder(uri string) {
	s.app.Preferences().SetString(KeyLastFolder, uri)
}

// GetCacheSizeMB returns the thumbnail disk cache limit in megabytes.
func (s *Settings) GetCacheSizeMB() int {
	value := s.app.Preferences().Int(KeyCacheSizeMB)
	if value <= 0 {
		return DefaultCacheSizeMB
	}
	return value
}

func (s *Settings) SetCacheSizeMB(mb int) {
	s.app.Preferences().SetInt(KeyCacheSizeMB, max(mb, MinCacheSizeMB))
}

// GetCacheMaxFiles returns the thumbnail disk cache limit in files.
func (s *Settings) GetCacheMaxFiles() int {
	value := s.app.Preferences().Int(KeyCacheMaxFiles)
	if value <= 0 {
		return DefaultCacheMaxFiles
	}
	return value
}

func (s *Settings) SetCacheMaxFiles(files int) {
	s.app.Preferences().SetInt(KeyCacheMaxFiles, max(files, MinCacheFiles))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
