package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WEBP format decoder

	"github.com/ironsheep/picture-tools-mcp/internal/picture"
)

// cachedPicture is a decoded file together with what the decoder reported.
type cachedPicture struct {
	pic      *picture.Picture
	format   string
	hasAlpha bool
	depth    string
}

// PictureCache provides thread-safe caching of decoded pictures to avoid
// redundant disk reads.
//
// The cache stores decoded pictures keyed by their file path. Once a file is
// loaded, subsequent Load() calls for the same path return the cached copy
// without disk I/O. Cached pictures are shared between callers and must be
// treated as read-only; every transformation in this module allocates a new
// picture for its result.
//
// PictureCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached pictures remain in memory until explicitly removed via Evict() or
// Clear(). For long-running processes handling many files, consider periodic
// cleanup to prevent unbounded memory growth.
//
// # Example Usage
//
//	cache := imaging.NewPictureCache()
//	pic, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Use pic...
//	cache.Evict("/path/to/image.png") // Optional: free memory
type PictureCache struct {
	mu       sync.RWMutex
	pictures map[string]*cachedPicture
}

// NewPictureCache creates and initializes a new empty picture cache.
func NewPictureCache() *PictureCache {
	return &PictureCache{
		pictures: make(map[string]*cachedPicture),
	}
}

// Load retrieves a picture from the cache or decodes it from disk if not
// cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF, BMP, TIFF and WEBP.
//
// Returns:
//   - *picture.Picture: The decoded picture, shared with other callers.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The picture is cached using the exact path string provided. Different paths
// to the same file (e.g., relative vs absolute) result in separate entries.
func (c *PictureCache) Load(path string) (*picture.Picture, error) {
	entry, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return entry.pic, nil
}

func (c *PictureCache) load(path string) (*cachedPicture, error) {
	c.mu.RLock()
	if entry, ok := c.pictures[path]; ok {
		c.mu.RUnlock()
		return entry, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	entry := &cachedPicture{
		pic:    picture.FromImage(img),
		format: format,
		depth:  "8-bit",
	}
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		entry.hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		entry.hasAlpha = true
		entry.depth = "16-bit"
	case *image.Gray16:
		entry.depth = "16-bit"
	}

	c.mu.Lock()
	c.pictures[path] = entry
	c.mu.Unlock()

	return entry, nil
}

// Put stores p under key, replacing any previous entry. It lets derived
// pictures be addressed by later tool calls without a round trip to disk.
func (c *PictureCache) Put(key string, p *picture.Picture) {
	c.mu.Lock()
	c.pictures[key] = &cachedPicture{pic: p, format: "png", hasAlpha: true, depth: "8-bit"}
	c.mu.Unlock()
}

// Len returns the number of cached pictures.
func (c *PictureCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pictures)
}

// Clear removes all pictures from the cache, freeing the associated memory.
func (c *PictureCache) Clear() {
	c.mu.Lock()
	c.pictures = make(map[string]*cachedPicture)
	c.mu.Unlock()
}

// Evict removes a specific picture from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
// After eviction, the next Load() call for this path will read from disk.
func (c *PictureCache) Evict(path string) {
	c.mu.Lock()
	delete(c.pictures, path)
	c.mu.Unlock()
}

// PictureInfo contains metadata about a loaded image file.
type PictureInfo struct {
	// Width is the picture width in pixels.
	Width int `json:"width"`

	// Height is the picture height in pixels.
	Height int `json:"height"`

	// Format is the format reported by the decoder: "png", "jpeg", "gif",
	// "bmp", "tiff" or "webp".
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel of the source file:
	// "8-bit" or "16-bit". Pictures are always held at 8 bits per channel.
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the source file has an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadPictureInfo loads a file into the cache (if not already cached) and
// returns its dimensions, format, color depth, alpha presence and size.
//
// Parameters:
//   - cache: The picture cache to use for loading. Must not be nil.
//   - path: Path to the image file.
//
// Returns:
//   - *PictureInfo: Metadata about the file.
//   - error: Non-nil if the file cannot be loaded or stat'd.
func LoadPictureInfo(cache *PictureCache, path string) (*PictureInfo, error) {
	entry, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &PictureInfo{
		Width:         entry.pic.Width(),
		Height:        entry.pic.Height(),
		Format:        entry.format,
		ColorDepth:    entry.depth,
		HasAlpha:      entry.hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}
