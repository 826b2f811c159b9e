package source

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"
)

// Disk cache limits. Once either is exceeded, the oldest thumbnails are
// removed until both are back under 80%.
var (
	MaxCacheSize  int64 = 200 * 1024 * 1024
	MaxCacheFiles int   = 10000
)

const keyContentBytes = 32 * 1024

// generateCacheKey identifies a thumbnail of path at px. The key changes when
// the file is moved, touched, resized or its leading bytes change.
func (f *Files) generateCacheKey(path string, px int) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(absPath))
	h.Write([]byte(info.ModTime().UTC().Format(time.RFC3339Nano)))
	h.Write([]byte(strconv.FormatInt(info.Size(), 10)))
	h.Write([]byte(strconv.Itoa(px)))

	if file, err := os.Open(absPath); err == nil {
		_, _ = io.CopyN(h, file, keyContentBytes)
		file.Close()
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type cachedThumbnail struct {
	name    string
	size    int64
	modTime time.Time
}

// cleanupCache evicts the least recently written thumbnails once the cache
// grows past its limits.
func (f *Files) cleanupCache() {
	if f.cacheDir == "" {
		return
	}

	entries, err := os.ReadDir(f.cacheDir)
	if err != nil {
		return
	}

	var cached []cachedThumbnail
	var total int64
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".jpg" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		cached = append(cached, cachedThumbnail{name: entry.Name(), size: info.Size(), modTime: info.ModTime()})
		total += info.Size()
	}

	if total <= MaxCacheSize && len(cached) <= MaxCacheFiles {
		return
	}

	slices.SortFunc(cached, func(a, b cachedThumbnail) int {
		return a.modTime.Compare(b.modTime)
	})

	sizeMark := MaxCacheSize * 8 / 10
	filesMark := MaxCacheFiles * 8 / 10
	remaining := len(cached)
	for _, c := range cached {
		if total <= sizeMark && remaining <= filesMark {
			break
		}
		if err := os.Remove(filepath.Join(f.cacheDir, c.name)); err != nil {
			continue
		}
		total -= c.size
		remaining--
	}
}
