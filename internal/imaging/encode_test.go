package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/picture-tools-mcp/internal/picture"
)

func TestEncode(t *testing.T) {
	p := createPatternPicture(20, 10)

	result, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if result.Width != 20 || result.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	raw, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if !picture.FromImage(img).Equal(p) {
		t.Error("decoded PNG does not match the encoded picture")
	}
}

func TestEncode_EmptyPicture(t *testing.T) {
	result, err := Encode(picture.New(0, 2))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if result.Width != 0 || result.Height != 2 {
		t.Errorf("dimensions: got %dx%d, want 0x2", result.Width, result.Height)
	}
	if result.ImageBase64 != "" {
		t.Errorf("expected no image data, got %d bytes", len(result.ImageBase64))
	}
}

func TestSave_EmptyPicture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	err := Save(picture.New(0, 2), path)
	if !errors.Is(err, ErrEmptyPicture) {
		t.Fatalf("Save: got %v, want ErrEmptyPicture", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be created for an empty picture")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	p := picture.NewFilled(8, 6, picture.RGBA(12, 34, 56, 128))
	dir := t.TempDir()

	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "out"+ext)
			if err := Save(p, path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got, err := NewPictureCache().Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got.Width() != 8 || got.Height() != 6 {
				t.Errorf("dimensions: got %dx%d, want 8x6", got.Width(), got.Height())
			}
		})
	}
}

func TestSave_PNGExact(t *testing.T) {
	p := createPatternPicture(8, 8)
	path := filepath.Join(t.TempDir(), "exact.png")

	if err := Save(p, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := NewPictureCache().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !got.Equal(p) {
		t.Error("PNG round trip changed the picture")
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	p := picture.New(2, 2)
	path := filepath.Join(t.TempDir(), "out.xyz")

	if err := Save(p, path); err == nil {
		t.Error("Save should fail for unknown extension")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be created for unknown extension")
	}
}

func TestSaveToDir(t *testing.T) {
	p := picture.New(3, 3)
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path1, err := SaveToDir(p, dir, "carve")
	if err != nil {
		t.Fatalf("SaveToDir failed: %v", err)
	}
	path2, err := SaveToDir(p, dir, "carve")
	if err != nil {
		t.Fatalf("SaveToDir failed: %v", err)
	}

	if path1 == path2 {
		t.Error("SaveToDir should generate unique names")
	}
	if !strings.HasPrefix(filepath.Base(path1), "carve-") || filepath.Ext(path1) != ".png" {
		t.Errorf("unexpected name %s", path1)
	}
	if _, err := os.Stat(path1); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}
