package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"strings"
	"sync"

	"github.com/ironsheep/silhouette-pose-mcp/internal/pose"
)

// ImageCache keeps decoded silhouettes and frames keyed by file path, so repeated tool
// calls on the same file skip disk I/O and decoding.
//
// ImageCache is safe for concurrent use. Entries stay in memory until Evict or Clear.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, format, err := cache.Load("/frames/0042-mask.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
type ImageCache struct {
	mu      sync.RWMutex
	entries map[string]cachedImage
}

type cachedImage struct {
	img    image.Image
	format string
}

// NewImageCache creates an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		entries: make(map[string]cachedImage),
	}
}

// Load returns the image at path, decoding it on first use.
//
// Parameters:
//   - path: File path of a PNG, JPEG or GIF image. The exact string is the cache key.
//
// Returns:
//   - image.Image: The decoded image.
//   - string: The format name reported by the decoder ("png", "jpeg", "gif").
//   - error: Non-nil if the file cannot be opened or decoded.
func (c *ImageCache) Load(path string) (image.Image, string, error) {
	c.mu.RLock()
	if e, ok := c.entries[path]; ok {
		c.mu.RUnlock()
		return e.img, e.format, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.entries[path] = cachedImage{img: img, format: format}
	c.mu.Unlock()

	return img, format, nil
}

// Clear drops every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cachedImage)
	c.mu.Unlock()
}

// Evict drops the image cached under path. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// SilhouetteInfo describes a silhouette file as the estimator will see it.
type SilhouetteInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoder's format name.
	Format string `json:"format"`

	// ForegroundPixels counts pixels at or above the threshold after binarization.
	ForegroundPixels int `json:"foreground_pixels"`

	// Coverage is ForegroundPixels divided by the pixel count.
	Coverage float64 `json:"coverage"`

	// WithinLimit is false when the estimator would reject the image as too large.
	WithinLimit bool `json:"within_limit"`
}

// LoadSilhouetteInfo loads path through cache and binarizes it with opts.Threshold.
//
// An image over opts.MaxPixels is evicted from cache again and reported with WithinLimit
// false and no foreground statistics.
//
// Parameters:
//   - cache: The image cache to use. Must not be nil.
//   - path: Path to the silhouette image.
//   - opts: Estimator options; Threshold and MaxPixels are used.
//
// Returns:
//   - *SilhouetteInfo: Dimensions, format and foreground statistics.
//   - error: Non-nil if the image cannot be loaded or has no pixels.
func LoadSilhouetteInfo(cache *ImageCache, path string, opts pose.Options) (*SilhouetteInfo, error) {
	img, format, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %s has no pixels", pose.ErrArrayInit, path)
	}

	info := &SilhouetteInfo{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Format:      strings.ToLower(format),
		WithinLimit: pose.WithinLimit(bounds, opts.MaxPixels),
	}
	if !info.WithinLimit {
		cache.Evict(path)
		return info, nil
	}

	threshold := opts.Threshold
	if threshold == 0 {
		threshold = pose.DefaultThreshold
	}
	info.ForegroundPixels = pose.ForegroundPixels(pose.Binarize(img, threshold))
	info.Coverage = float64(info.ForegroundPixels) / float64(bounds.Dx()*bounds.Dy())
	return info, nil
}

// NewEstimator loads path through cache and prepares a pose.Estimator for it.
func NewEstimator(cache *ImageCache, path string, opts pose.Options) (*pose.Estimator, error) {
	img, _, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	e, err := pose.New(img, opts)
	if err != nil {
		if errors.Is(err, pose.ErrSilhouetteTooLarge) {
			// Oversized silhouettes are rejected for every call; do not keep them around.
			cache.Evict(path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return e, nil
}
