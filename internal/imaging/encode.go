package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ironsheep/picture-tools-mcp/internal/picture"
)

// ErrEmptyPicture is returned by Save for pictures with no pixels, which no
// supported file format can hold.
var ErrEmptyPicture = errors.New("picture has no pixels")

// PictureResult contains an encoded picture ready to be returned to a client.
type PictureResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	OutputPath  string `json:"output_path,omitempty"`
}

// Encode renders p as a base64 PNG. A picture with no pixels, such as one
// carved down to zero width, yields its dimensions and no image data.
func Encode(p *picture.Picture) (*PictureResult, error) {
	if p.Empty() {
		return &PictureResult{Width: p.Width(), Height: p.Height(), MimeType: "image/png"}, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, p.NRGBA()); err != nil {
		return nil, fmt.Errorf("failed to encode picture: %w", err)
	}

	return &PictureResult{
		Width:       p.Width(),
		Height:      p.Height(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes p to path. The encoder is chosen by the file extension:
// .png, .jpg/.jpeg, .gif, .bmp and .tif/.tiff are supported.
func Save(p *picture.Picture, path string) error {
	if p.Empty() {
		return fmt.Errorf("cannot save %dx%d picture to %s: %w", p.Width(), p.Height(), path, ErrEmptyPicture)
	}

	var encode func(f *os.File, img image.Image) error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(f *os.File, img image.Image) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		encode = func(f *os.File, img image.Image) error {
			return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
		}
	case ".gif":
		encode = func(f *os.File, img image.Image) error { return gif.Encode(f, img, nil) }
	case ".bmp":
		encode = func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }
	case ".tif", ".tiff":
		encode = func(f *os.File, img image.Image) error { return tiff.Encode(f, img, nil) }
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := encode(f, p.NRGBA()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// SaveToDir writes p as a PNG with a fresh unique name under dir and returns
// the resulting path. prefix names the operation that produced p.
func SaveToDir(p *picture.Picture, dir, prefix string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.png", prefix, uuid.NewString()))
	if err := Save(p, path); err != nil {
		return "", err
	}
	return path, nil
}
