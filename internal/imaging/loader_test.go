package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/ironsheep/picture-tools-mcp/internal/picture"
)

// createTestImage creates a simple test image file and returns its path.
// The caller is responsible for removing the file.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "test-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

func TestNewPictureCache(t *testing.T) {
	cache := NewPictureCache()
	if cache == nil {
		t.Fatal("NewPictureCache returned nil")
	}
	if cache.Len() != 0 {
		t.Fatalf("new cache should be empty, has %d entries", cache.Len())
	}
}

func TestPictureCache_Load(t *testing.T) {
	cache := NewPictureCache()
	imgPath := createTestImage(t, 100, 80, color.RGBA{255, 0, 0, 255})
	defer os.Remove(imgPath)

	pic1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if pic1.Width() != 100 || pic1.Height() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x80", pic1.Width(), pic1.Height())
	}
	if got := pic1.ColorAt(10, 10); got != picture.RGB(255, 0, 0) {
		t.Errorf("pixel: got %+v, want red", got)
	}

	// Second load should return cached picture
	pic2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if pic1 != pic2 {
		t.Error("second Load did not return cached picture")
	}
}

func TestPictureCache_Load_NonExistent(t *testing.T) {
	cache := NewPictureCache()
	_, err := cache.Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestPictureCache_Load_InvalidImage(t *testing.T) {
	cache := NewPictureCache()

	tmpFile, err := os.CreateTemp("", "invalid-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.WriteString("not an image")
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	_, err = cache.Load(tmpFile.Name())
	if err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestPictureCache_Load_BMP(t *testing.T) {
	cache := NewPictureCache()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 10, 20, 30, 255
	}
	path := filepath.Join(t.TempDir(), "pic.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := bmp.Encode(f, img); err != nil {
		t.Fatalf("failed to encode bmp: %v", err)
	}
	f.Close()

	info, err := LoadPictureInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadPictureInfo failed: %v", err)
	}
	if info.Format != "bmp" {
		t.Errorf("Format: got %s, want bmp", info.Format)
	}

	pic, _ := cache.Load(path)
	if got := pic.ColorAt(3, 2); got != picture.RGB(10, 20, 30) {
		t.Errorf("pixel: got %+v, want (10,20,30)", got)
	}
}

func TestPictureCache_Put(t *testing.T) {
	cache := NewPictureCache()
	p := picture.NewFilled(2, 2, picture.Red)

	cache.Put("derived", p)

	got, err := cache.Load("derived")
	if err != nil {
		t.Fatalf("Load after Put failed: %v", err)
	}
	if got != p {
		t.Error("Load did not return the stored picture")
	}
}

func TestPictureCache_Clear(t *testing.T) {
	cache := NewPictureCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{0, 255, 0, 255})
	defer os.Remove(imgPath)

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("Clear did not empty cache: %d pictures remain", cache.Len())
	}
}

func TestPictureCache_Evict(t *testing.T) {
	cache := NewPictureCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{0, 0, 255, 255})
	defer os.Remove(imgPath)

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(imgPath)

	cache.mu.RLock()
	_, exists := cache.pictures[imgPath]
	cache.mu.RUnlock()

	if exists {
		t.Error("Evict did not remove picture from cache")
	}
}

func TestPictureCache_Evict_NonExistent(t *testing.T) {
	cache := NewPictureCache()
	// Should not panic
	cache.Evict("/nonexistent/path")
}

func TestPictureCache_ConcurrentAccess(t *testing.T) {
	cache := NewPictureCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{128, 128, 128, 255})
	defer os.Remove(imgPath)

	var wg sync.WaitGroup
	errors := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Load(imgPath)
			if err != nil {
				errors <- err
			}
		}()
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Errorf("concurrent Load error: %v", err)
	}
}

func TestLoadPictureInfo(t *testing.T) {
	cache := NewPictureCache()
	imgPath := createTestImage(t, 200, 150, color.RGBA{255, 128, 64, 255})
	defer os.Remove(imgPath)

	info, err := LoadPictureInfo(cache, imgPath)
	if err != nil {
		t.Fatalf("LoadPictureInfo failed: %v", err)
	}

	if info.Width != 200 {
		t.Errorf("Width: got %d, want 200", info.Width)
	}
	if info.Height != 150 {
		t.Errorf("Height: got %d, want 150", info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("ColorDepth: got %s, want 8-bit", info.ColorDepth)
	}
	if info.FileSizeBytes <= 0 {
		t.Error("FileSizeBytes should be positive")
	}
}

func TestLoadPictureInfo_FormatFromContent(t *testing.T) {
	cache := NewPictureCache()

	// A PNG with a misleading extension is still reported as png.
	path := filepath.Join(t.TempDir(), "mislabeled.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	png.Encode(f, image.NewRGBA(image.Rect(0, 0, 10, 10)))
	f.Close()

	info, err := LoadPictureInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadPictureInfo failed: %v", err)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
}

func TestLoadPictureInfo_NonExistent(t *testing.T) {
	cache := NewPictureCache()
	_, err := LoadPictureInfo(cache, "/nonexistent/image.png")
	if err == nil {
		t.Error("LoadPictureInfo should fail for non-existent file")
	}
}
