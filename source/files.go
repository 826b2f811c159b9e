// Package source provides image sources for thumbnail strips and pagers:
// in-memory images and image files loaded in the background with a memory and
// disk cache.
package source

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupported is returned for items that are not local image files.
var ErrUnsupported = errors.New("unsupported image")

const (
	maxPendingRequests = 100
	workerCount        = 4

	// Thumbnails are rendered at twice their size for high density displays.
	thumbnailDensity = 2
)

type request struct {
	uri      fyne.URI
	px       int // edge of the square thumbnail, 0 for the full image
	callback func(image.Image)
}

// Files serves image files. Images are decoded on background workers, most
// recent request first, and thumbnails are kept in memory and on disk.
type Files struct {
	uris []fyne.URI

	cache    sync.Map // map[string]image.Image
	cacheDir string

	requests []request
	reqLock  sync.Mutex
	reqCond  *sync.Cond
	closed   bool
}

// NewFiles creates a source over uris and starts its workers. The disk cache
// lives in cacheDir; an empty cacheDir keeps thumbnails in memory only.
func NewFiles(uris []fyne.URI, cacheDir string) *Files {
	f := &Files{
		uris:     uris,
		requests: make([]request, 0, maxPendingRequests),
		cacheDir: cacheDir,
	}
	f.reqCond = sync.NewCond(&f.reqLock)

	if f.cacheDir != "" {
		if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
			fyne.LogError("could not create thumbnail cache", err)
			f.cacheDir = ""
		} else {
			go f.cleanupCache()
		}
	}

	for i := 0; i < workerCount; i++ {
		go f.worker()
	}
	return f
}

// DefaultCacheDir returns the per-user thumbnail cache directory, or "" when
// the platform has none.
func DefaultCacheDir() string {
	userCache, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(userCache, "thumbnailview")
}

func (f *Files) ItemCount() int { return len(f.uris) }
func (f *Files) Count() int     { return len(f.uris) }

// URI returns the file shown at index.
func (f *Files) URI(index int) fyne.URI {
	if index < 0 || index >= len(f.uris) {
		return nil
	}
	return f.uris[index]
}

// Thumbnail loads a letterboxed square thumbnail for item index.
func (f *Files) Thumbnail(index int, size fyne.Size, callback func(image.Image)) {
	edge := math.Ceil(float64(max(size.Width, size.Height)))
	px := int(edge) * thumbnailDensity
	if px <= 0 {
		return
	}
	f.load(index, px, callback)
}

// Image loads item index at full size.
func (f *Files) Image(index int, callback func(image.Image)) {
	f.load(index, 0, callback)
}

// Close stops the workers. Pending requests are dropped.
func (f *Files) Close() {
	f.reqLock.Lock()
	f.closed = true
	f.requests = nil
	f.reqCond.Broadcast()
	f.reqLock.Unlock()
}

func (f *Files) load(index int, px int, callback func(image.Image)) {
	uri := f.URI(index)
	if err := checkSupported(uri); err != nil {
		fyne.LogError(fmt.Sprintf("cannot load item %d", index), err)
		return
	}

	if px > 0 {
		if cached, ok := f.cache.Load(memoryKey(uri.Path(), px)); ok {
			callback(cached.(image.Image))
			return
		}
	}

	f.reqLock.Lock()
	defer f.reqLock.Unlock()
	if f.closed {
		return
	}
	// Keep the queue short and recent: the oldest request is the least
	// likely to still be on screen.
	if len(f.requests) >= maxPendingRequests {
		f.requests = f.requests[1:]
	}
	f.requests = append(f.requests, request{uri: uri, px: px, callback: callback})
	f.reqCond.Signal()
}

func (f *Files) worker() {
	for {
		f.reqLock.Lock()
		for len(f.requests) == 0 && !f.closed {
			f.reqCond.Wait()
		}
		if f.closed {
			f.reqLock.Unlock()
			return
		}
		last := len(f.requests) - 1
		req := f.requests[last]
		f.requests = f.requests[:last]
		f.reqLock.Unlock()

		img, err := f.serve(req)
		if err != nil {
			fyne.LogError("could not load "+req.uri.Path(), err)
			continue
		}
		req.callback(img)
	}
}

func (f *Files) serve(req request) (image.Image, error) {
	path := req.uri.Path()
	if req.px == 0 {
		return loadImage(path)
	}

	key := memoryKey(path, req.px)
	if cached, ok := f.cache.Load(key); ok {
		return cached.(image.Image), nil
	}

	if img, ok := f.loadFromDisk(path, req.px); ok {
		f.cache.Store(key, img)
		return img, nil
	}

	src, err := loadImage(path)
	if err != nil {
		return nil, err
	}
	thumb, err := letterbox(src, req.px)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.cache.Store(key, thumb)
	f.saveToDisk(path, req.px, thumb)
	return thumb, nil
}

func (f *Files) loadFromDisk(path string, px int) (image.Image, bool) {
	if f.cacheDir == "" {
		return nil, false
	}
	key, err := f.generateCacheKey(path, px)
	if err != nil {
		return nil, false
	}
	img, err := loadImage(filepath.Join(f.cacheDir, key+".jpg"))
	if err != nil {
		return nil, false
	}
	return img, true
}

func (f *Files) saveToDisk(path string, px int, img image.Image) {
	if f.cacheDir == "" {
		return
	}
	key, err := f.generateCacheKey(path, px)
	if err != nil {
		return
	}
	out, err := os.Create(filepath.Join(f.cacheDir, key+".jpg"))
	if err != nil {
		return
	}
	_ = jpeg.Encode(out, img, &jpeg.Options{Quality: 85})
	out.Close()
}

func memoryKey(path string, px int) string {
	return path + "@" + strconv.Itoa(px)
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// letterbox scales img to fit a square of edge px, centred on black.
func letterbox(img image.Image, px int) (*image.RGBA, error) {
	srcBounds := img.Bounds()
	srcW, srcH := srcBounds.Dx(), srcBounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil, errors.New("empty image")
	}

	dst := image.NewRGBA(image.Rect(0, 0, px, px))
	draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)

	scaledW, scaledH := px, px
	ratio := float64(srcW) / float64(srcH)
	if ratio > 1 {
		scaledH = max(int(float64(px)/ratio), 1)
	} else {
		scaledW = max(int(float64(px)*ratio), 1)
	}

	x := (px - scaledW) / 2
	y := (px - scaledH) / 2
	draw.ApproxBiLinear.Scale(dst, image.Rect(x, y, x+scaledW, y+scaledH), img, srcBounds, draw.Over, nil)
	return dst, nil
}

var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsSupported reports whether uri is a local file in a format the sources
// can decode.
func IsSupported(uri fyne.URI) bool {
	return checkSupported(uri) == nil
}

func checkSupported(uri fyne.URI) error {
	if uri == nil {
		return fmt.Errorf("no such item: %w", ErrUnsupported)
	}
	if uri.Scheme() != "file" {
		return fmt.Errorf("%s is not a local file: %w", uri, ErrUnsupported)
	}
	if !supportedExtensions[strings.ToLower(filepath.Ext(uri.Path()))] {
		return fmt.Errorf("%s: %w", uri.Name(), ErrUnsupported)
	}
	return nil
}
