// Package imageio reads image containers into pixel buffers and writes
// stego buffers back out. Only lossless output formats are allowed; a lossy
// re-encode would destroy the low bit payload.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/yyyoichi/stegoshield/pixel"
)

type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

var (
	ErrLossyFormat   = errors.New("lossy output format")
	ErrUnknownFormat = errors.New("unknown image format")
)

// Decode reads any registered container (png, jpeg, gif, bmp, tiff, webp)
// and returns its BGR pixel buffer and format name.
func Decode(r io.Reader) (*pixel.Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return pixel.FromImage(img), format, nil
}

// Encode writes buf in the given lossless format.
func Encode(w io.Writer, buf *pixel.Buffer, format Format) error {
	img, err := buf.Image()
	if err != nil {
		return err
	}
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// FormatFromPath picks the output format from a file extension.
// An empty extension selects PNG.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "", "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "jpg", "jpeg", "webp", "gif":
		return "", fmt.Errorf("%w: %q, use png, bmp or tiff", ErrLossyFormat, ext)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}
